package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/breakout-talents/internal/dtos"
	"github.com/justsurfingit/breakout-talents/internal/forms"
	"github.com/justsurfingit/breakout-talents/internal/voice"
)

// VoiceHandler drives the optional voice conversation of the apply flow.
type VoiceHandler struct{}

func NewVoiceHandler() *VoiceHandler {
	return &VoiceHandler{}
}

// voiceMessage maps a start or stop failure to the text shown to the visitor.
func voiceMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, voice.ErrMicrophoneDenied):
		return "Microphone access is required to start the conversation."
	case errors.Is(err, voice.ErrAgentNotConfigured):
		return "Voice chat is not configured."
	case errors.Is(err, voice.ErrSessionActive):
		return "A conversation is already running."
	case errors.Is(err, voice.ErrNotConnected):
		return "There is no conversation to end."
	}
	return fallback
}

// Start is POST /apply/voice/start.
func (h *VoiceHandler) Start(c *gin.Context) {
	v := visitorFrom(c)
	state := v.Apply()
	if !state.Completed {
		c.Redirect(http.StatusSeeOther, "/apply")
		return
	}

	var req dtos.VoiceStartRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data: "+err.Error())
		return
	}

	_, err := v.Voice().Start(c.Request.Context(), req.MicGranted, map[string]string{
		"firstName": state.FirstName,
		"role":      state.Role,
	})
	if err != nil {
		log.Printf("⚠️  Voice start failed: %v", err)
		v.AddFlash(forms.Notification{Title: "Voice chat unavailable", Description: voiceMessage(err, "Failed to start conversation. Please try again."), Variant: forms.VariantDestructive})
	}
	c.Redirect(http.StatusSeeOther, "/apply/voice")
}

// Stop is POST /apply/voice/stop.
func (h *VoiceHandler) Stop(c *gin.Context) {
	v := visitorFrom(c)
	if err := v.Voice().Stop(c.Request.Context()); err != nil {
		log.Printf("⚠️  Voice stop failed: %v", err)
		v.AddFlash(forms.Notification{Title: "Could not end conversation", Description: voiceMessage(err, "Failed to end conversation. Please try again."), Variant: forms.VariantDestructive})
	}
	c.Redirect(http.StatusSeeOther, "/apply/voice")
}

func statusResponse(vc *voice.Controller) dtos.VoiceStatusResponse {
	resp := dtos.VoiceStatusResponse{
		Status:     string(vc.Status()),
		IsSpeaking: vc.IsSpeaking(),
		CanStart:   vc.CanStart(),
		CanStop:    vc.CanStop(),
	}
	if handle, ok := vc.Handle(); ok {
		resp.SignedURL = handle.SignedURL
	}
	return resp
}

// Status is GET /api/v1/voice/status.
func (h *VoiceHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse(visitorFrom(c).Voice()))
}

// Events is POST /api/v1/voice/events, fed by the browser SDK callbacks.
func (h *VoiceHandler) Events(c *gin.Context) {
	var req dtos.VoiceEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	vc := visitorFrom(c).Voice()
	vc.Report(voice.ParseStatus(req.Status), req.IsSpeaking)
	c.JSON(http.StatusOK, statusResponse(vc))
}
