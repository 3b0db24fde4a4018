package dtos

type VoiceStartRequest struct {
	MicGranted bool `form:"mic_granted" json:"mic_granted"`
}

// VoiceEventRequest is posted by the browser SDK on status and mode changes.
type VoiceEventRequest struct {
	Status     string `form:"status" json:"status" binding:"required,oneof=disconnected connecting connected"`
	IsSpeaking bool   `form:"is_speaking" json:"is_speaking"`
}

type VoiceStatusResponse struct {
	Status     string `json:"status"`
	IsSpeaking bool   `json:"is_speaking"`
	CanStart   bool   `json:"can_start"`
	CanStop    bool   `json:"can_stop"`
	SignedURL  string `json:"signed_url,omitempty"`
}
