// Package elevenlabs provisions ElevenLabs conversational-AI sessions. The
// server mints a short-lived signed URL; the browser SDK opens the websocket
// with it and reports status and speaking mode back.
package elevenlabs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/justsurfingit/breakout-talents/internal/voice"
)

const signedURLPath = "/v1/convai/conversation/get-signed-url"

// DefaultConnectTimeout is how long a session may stay connecting without
// hearing from the browser.
const DefaultConnectTimeout = 30 * time.Second

var ErrEmptySignedURL = errors.New("elevenlabs: empty signed url in response")

// Client calls the ElevenLabs API. Signed URL minting is rate limited across
// all visitors so a burst of starts cannot run the account dry.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string

	// ConnectTimeout drops a session back to disconnected when the browser
	// never reports the websocket open.
	ConnectTimeout time.Duration

	limiter *rate.Limiter
	now     func() time.Time
}

func NewClient(baseURL, apiKey string, perMinute int) *Client {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &Client{
		HTTP:           &http.Client{Timeout: 10 * time.Second},
		BaseURL:        strings.TrimRight(baseURL, "/"),
		APIKey:         apiKey,
		ConnectTimeout: DefaultConnectTimeout,
		limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		now:            time.Now,
	}
}

type signedURLResponse struct {
	SignedURL string `json:"signed_url"`
}

// SignedURL returns a signed websocket URL for agentID.
func (c *Client) SignedURL(ctx context.Context, agentID string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("elevenlabs: rate limit: %w", err)
	}

	q := url.Values{"agent_id": {agentID}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+signedURLPath+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("xi-api-key", c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("elevenlabs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("elevenlabs: signed url returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out signedURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("elevenlabs: decode signed url: %w", err)
	}
	if out.SignedURL == "" {
		return "", ErrEmptySignedURL
	}
	return out.SignedURL, nil
}

// NewSession returns a session for one visitor.
func (c *Client) NewSession() *Session {
	return &Session{client: c, status: voice.StatusDisconnected}
}

// Session implements voice.Session and voice.Reporter.
type Session struct {
	client *Client

	mu        sync.Mutex
	status    voice.Status
	speaking  bool
	startedAt time.Time
}

var (
	_ voice.Session  = (*Session)(nil)
	_ voice.Reporter = (*Session)(nil)
)

// Start mints the signed URL. The session stays connecting until the browser
// reports the websocket is open, or until the client's ConnectTimeout passes.
func (s *Session) Start(ctx context.Context, cfg voice.SessionConfig) (voice.Handle, error) {
	s.mu.Lock()
	s.status = voice.StatusConnecting
	s.speaking = false
	s.startedAt = s.client.now()
	s.mu.Unlock()

	signed, err := s.client.SignedURL(ctx, cfg.AgentID)
	if err != nil {
		s.mu.Lock()
		s.status = voice.StatusDisconnected
		s.mu.Unlock()
		return voice.Handle{}, err
	}

	// The wait for the browser starts once it has a URL to open.
	s.mu.Lock()
	s.startedAt = s.client.now()
	s.mu.Unlock()

	return voice.Handle{
		SignedURL:        signed,
		AgentID:          cfg.AgentID,
		ConnectionType:   cfg.ConnectionType,
		DynamicVariables: cfg.DynamicVariables,
	}, nil
}

// Stop marks the session disconnected. The browser closes its websocket itself.
func (s *Session) Stop(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = voice.StatusDisconnected
	s.speaking = false
	return nil
}

func (s *Session) Status() voice.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Session) statusLocked() voice.Status {
	if s.status == voice.StatusConnecting && s.client.ConnectTimeout > 0 &&
		s.client.now().Sub(s.startedAt) > s.client.ConnectTimeout {
		s.status = voice.StatusDisconnected
	}
	return s.status
}

func (s *Session) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

func (s *Session) Report(status voice.Status, speaking bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.speaking = speaking && status == voice.StatusConnected
}
