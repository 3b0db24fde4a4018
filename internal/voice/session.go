// Package voice gates the optional voice conversation offered after the apply
// form. The conversation itself runs in the visitor's browser against the
// provider; this package only decides when a session may start or stop and
// tracks what the browser reports back.
package voice

import (
	"context"
	"errors"
)

type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
)

// ParseStatus maps a provider status string, defaulting to disconnected.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusConnecting, StatusConnected:
		return Status(s)
	}
	return StatusDisconnected
}

const ConnectionWebSocket = "websocket"

var (
	ErrSessionActive      = errors.New("voice session already connecting or connected")
	ErrNotConnected       = errors.New("no voice session connected")
	ErrAgentNotConfigured = errors.New("voice agent id not configured")
	ErrMicrophoneDenied   = errors.New("microphone permission not granted")
)

type SessionConfig struct {
	AgentID          string
	ConnectionType   string
	DynamicVariables map[string]string
}

// Handle is what the browser widget needs to open the conversation.
type Handle struct {
	SignedURL        string            `json:"signed_url"`
	AgentID          string            `json:"agent_id"`
	ConnectionType   string            `json:"connection_type"`
	DynamicVariables map[string]string `json:"dynamic_variables"`
}

// Session is the narrow capability the apply flow needs from a voice provider.
type Session interface {
	Start(ctx context.Context, cfg SessionConfig) (Handle, error)
	Stop(ctx context.Context) error
	Status() Status
	IsSpeaking() bool
}

// Reporter is implemented by sessions whose state is driven by events the
// browser SDK emits (status changes, speaking/listening mode).
type Reporter interface {
	Report(status Status, speaking bool)
}
