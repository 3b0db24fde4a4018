package voice

import (
	"context"
	"fmt"
	"sync"
)

// Controller owns one visitor's voice session and enforces when the start and
// stop actions are allowed.
type Controller struct {
	session Session
	agentID string

	mu       sync.Mutex
	starting bool
	handle   *Handle
}

func NewController(session Session, agentID string) *Controller {
	return &Controller{session: session, agentID: agentID}
}

// Status is connecting while a start is pending, otherwise the session's status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

func (c *Controller) statusLocked() Status {
	if c.starting {
		return StatusConnecting
	}
	if c.session == nil {
		return StatusDisconnected
	}
	return c.session.Status()
}

func (c *Controller) IsSpeaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil && c.statusLocked() == StatusConnected && c.session.IsSpeaking()
}

// CanStart is false while a session is connecting or connected.
func (c *Controller) CanStart() bool { return c.Status() == StatusDisconnected }

// CanStop is true only while a session is connected.
func (c *Controller) CanStop() bool { return c.Status() == StatusConnected }

// Handle returns the handle of the current session, if any.
func (c *Controller) Handle() (Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handle == nil || c.statusLocked() == StatusDisconnected {
		return Handle{}, false
	}
	return *c.handle, true
}

// Start opens a session for the visitor. micGranted carries the browser's
// microphone permission result; the start is aborted without it.
func (c *Controller) Start(ctx context.Context, micGranted bool, vars map[string]string) (Handle, error) {
	c.mu.Lock()
	if c.statusLocked() != StatusDisconnected {
		c.mu.Unlock()
		return Handle{}, ErrSessionActive
	}
	if c.agentID == "" || c.session == nil {
		c.mu.Unlock()
		return Handle{}, ErrAgentNotConfigured
	}
	if !micGranted {
		c.mu.Unlock()
		return Handle{}, ErrMicrophoneDenied
	}
	c.starting = true
	c.handle = nil
	c.mu.Unlock()

	h, err := c.session.Start(ctx, SessionConfig{
		AgentID:          c.agentID,
		ConnectionType:   ConnectionWebSocket,
		DynamicVariables: vars,
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.starting = false
	if err != nil {
		return Handle{}, fmt.Errorf("failed to start conversation: %w", err)
	}
	c.handle = &h
	return h, nil
}

// Stop tears the connected session down.
func (c *Controller) Stop(ctx context.Context) error {
	if !c.CanStop() {
		return ErrNotConnected
	}
	if err := c.session.Stop(ctx); err != nil {
		return fmt.Errorf("failed to end conversation: %w", err)
	}
	c.mu.Lock()
	c.handle = nil
	c.mu.Unlock()
	return nil
}

// Report forwards a browser SDK event to sessions that track them.
func (c *Controller) Report(status Status, speaking bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.session.(Reporter); ok {
		r.Report(status, speaking)
	}
}
