package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/breakout-talents/internal/dtos"
	"github.com/justsurfingit/breakout-talents/internal/forms"
	"github.com/justsurfingit/breakout-talents/internal/services"
	"github.com/justsurfingit/breakout-talents/internal/session"
	"github.com/justsurfingit/breakout-talents/internal/views"
)

// LeadHandler accepts lead submissions from the HTML forms and the JSON API.
// Both paths go through the visitor's form instance.
type LeadHandler struct {
	VoiceEnabled bool
}

func NewLeadHandler(voiceEnabled bool) *LeadHandler {
	return &LeadHandler{VoiceEnabled: voiceEnabled}
}

func (h *LeadHandler) submit(c *gin.Context, v *session.Visitor, form string, raw forms.Values) (*forms.Notification, error) {
	fc, err := v.Form(form)
	if err != nil {
		return nil, err
	}
	ctx := services.WithUserAgent(c.Request.Context(), c.Request.UserAgent())
	return fc.Submit(ctx, raw)
}

// postForm binds req from the posted form, submits it and redirects to back.
// Field errors stay on the form instance and render inline; notifications are
// queued as flashes.
func (h *LeadHandler) postForm(c *gin.Context, form string, req dtos.Valuer, back string) {
	if err := c.ShouldBind(req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data: "+err.Error())
		return
	}
	v := visitorFrom(c)
	n, err := h.submit(c, v, form, req.Values())
	if n != nil {
		v.AddFlash(*n)
	}
	if err != nil && !isExpected(err) {
		log.Printf("❌ %s submission: %v", form, err)
	}
	c.Redirect(http.StatusSeeOther, back)
}

func (h *LeadHandler) SubmitTalentForm(c *gin.Context) {
	h.postForm(c, forms.FormTalent, &dtos.TalentSubmissionRequest{}, "/?audience=talents")
}

func (h *LeadHandler) SubmitStartupForm(c *gin.Context) {
	h.postForm(c, forms.FormStartup, &dtos.StartupSubmissionRequest{}, "/?audience=startups")
}

func (h *LeadHandler) SubmitReferralForm(c *gin.Context) {
	h.postForm(c, forms.FormReferral, &dtos.ReferralRequest{}, "/refer#referral-form")
}

// saveDraft copies the posted fields into the visitor's form instance without
// submitting it, then lands on the audience (and role) named in the query.
func (h *LeadHandler) saveDraft(c *gin.Context, form string) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data: "+err.Error())
		return
	}
	fc, err := visitorFrom(c).Form(form)
	if err != nil {
		log.Printf("❌ %s draft: %v", form, err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	for _, f := range fc.Schema().Fields {
		if posted, ok := c.Request.PostForm[f.Name]; ok && len(posted) > 0 {
			fc.SetValue(f.Name, posted[0])
		}
	}

	q := url.Values{"audience": {string(views.ParseAudience(c.Query("audience")))}}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q.Set("role", role)
	}
	c.Redirect(http.StatusSeeOther, "/?"+q.Encode())
}

// SaveTalentDraft is POST /talent/draft, posted by the audience toggle and the
// role chips.
func (h *LeadHandler) SaveTalentDraft(c *gin.Context) {
	h.saveDraft(c, forms.FormTalent)
}

func (h *LeadHandler) SaveStartupDraft(c *gin.Context) {
	h.saveDraft(c, forms.FormStartup)
}

// SubmitApplyForm is POST /apply. On success the first name and role are
// kept for the voice step.
func (h *LeadHandler) SubmitApplyForm(c *gin.Context) {
	var req dtos.ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data: "+err.Error())
		return
	}
	v := visitorFrom(c)
	fc, err := v.Form(forms.FormApply)
	if err != nil {
		log.Printf("❌ apply submission: %v", err)
		c.Redirect(http.StatusSeeOther, "/apply")
		return
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = fc.Values().Get("role")
	}

	n, err := h.submit(c, v, forms.FormApply, req.Values())
	if n != nil {
		v.AddFlash(*n)
	}
	if err != nil {
		if !isExpected(err) {
			log.Printf("❌ apply submission: %v", err)
		}
		c.Redirect(http.StatusSeeOther, "/apply")
		return
	}

	v.SetApply(session.ApplyState{
		FirstName: strings.TrimSpace(req.FirstName),
		Role:      role,
		Completed: true,
	})
	if !h.VoiceEnabled {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.Redirect(http.StatusSeeOther, "/apply/voice")
}

// isExpected reports outcomes the user already sees on the page.
func isExpected(err error) bool {
	var fe forms.FieldErrors
	var se *forms.SubmissionError
	return errors.As(err, &fe) || errors.As(err, &se) || errors.Is(err, forms.ErrSubmissionInFlight)
}

// postJSON handles the JSON variant of a lead endpoint.
func (h *LeadHandler) postJSON(c *gin.Context, form string, req dtos.Valuer) {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.SubmissionResponse{Error: "Invalid JSON format: " + err.Error()})
		return
	}

	n, err := h.submit(c, visitorFrom(c), form, req.Values())
	if err == nil {
		c.JSON(http.StatusCreated, dtos.SubmissionResponse{Success: true, Title: n.Title, Description: n.Description})
		return
	}

	var fe forms.FieldErrors
	var se *forms.SubmissionError
	switch {
	case errors.As(err, &fe):
		out := make(map[string]string, len(fe))
		for name, e := range fe {
			out[name] = e.Message
		}
		c.JSON(http.StatusUnprocessableEntity, dtos.SubmissionResponse{Error: "Validation failed", FieldErrors: out})
	case errors.Is(err, forms.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, dtos.SubmissionResponse{Error: "Submission already in progress"})
	case errors.As(err, &se):
		resp := dtos.SubmissionResponse{Error: se.Message}
		if n != nil {
			resp.Title = n.Title
		}
		c.JSON(http.StatusBadGateway, resp)
	default:
		log.Printf("❌ %s submission: %v", form, err)
		c.JSON(http.StatusInternalServerError, dtos.SubmissionResponse{Error: "Failed to submit: " + err.Error()})
	}
}

func (h *LeadHandler) CreateTalentSubmission(c *gin.Context) {
	h.postJSON(c, forms.FormTalent, &dtos.TalentSubmissionRequest{})
}

func (h *LeadHandler) CreateStartupSubmission(c *gin.Context) {
	h.postJSON(c, forms.FormStartup, &dtos.StartupSubmissionRequest{})
}

func (h *LeadHandler) CreateReferral(c *gin.Context) {
	h.postJSON(c, forms.FormReferral, &dtos.ReferralRequest{})
}
