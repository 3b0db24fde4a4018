package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/justsurfingit/breakout-talents/internal/forms"
	"github.com/justsurfingit/breakout-talents/internal/voice"
)

// CookieName identifies the visitor across requests.
const CookieName = "bt_visitor"

// FormFactory builds a fresh form instance for the named form.
type FormFactory func(name string) (*forms.Controller, error)

// VoiceFactory builds the voice controller for a new visitor.
type VoiceFactory func() *voice.Controller

// ApplyState carries the apply hand-off between step one and the voice step.
type ApplyState struct {
	FirstName string
	Role      string
	Completed bool
}

// Visitor holds everything one browser owns: its form instances, pending
// notifications, apply progress and voice session. Nothing is shared between
// visitors.
type Visitor struct {
	ID string

	store *Store

	mu       sync.Mutex
	forms    map[string]*forms.Controller
	flashes  []forms.Notification
	apply    ApplyState
	voice    *voice.Controller
	lastSeen time.Time
}

// Form returns the visitor's instance of the named form, creating it on first use.
func (v *Visitor) Form(name string) (*forms.Controller, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if c, ok := v.forms[name]; ok {
		return c, nil
	}
	c, err := v.store.newForm(name)
	if err != nil {
		return nil, err
	}
	v.forms[name] = c
	return c, nil
}

// AddFlash queues a notification for the next rendered page.
func (v *Visitor) AddFlash(n forms.Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.flashes = append(v.flashes, n)
}

// TakeFlashes returns and clears the queued notifications.
func (v *Visitor) TakeFlashes() []forms.Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.flashes
	v.flashes = nil
	return out
}

func (v *Visitor) Apply() ApplyState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.apply
}

func (v *Visitor) SetApply(a ApplyState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.apply = a
}

// Voice returns the visitor's voice controller, creating it on first use.
func (v *Visitor) Voice() *voice.Controller {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.voice == nil {
		v.voice = v.store.newVoice()
	}
	return v.voice
}

func (v *Visitor) busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, c := range v.forms {
		if c.Busy() {
			return true
		}
	}
	return false
}

// Store keeps visitors in memory and forgets them after TTL of inactivity.
type Store struct {
	ttl      time.Duration
	newForm  FormFactory
	newVoice VoiceFactory
	now      func() time.Time

	mu       sync.Mutex
	visitors map[string]*Visitor
}

func NewStore(ttl time.Duration, newForm FormFactory, newVoice VoiceFactory) *Store {
	if newVoice == nil {
		newVoice = func() *voice.Controller { return voice.NewController(nil, "") }
	}
	return &Store{
		ttl:      ttl,
		newForm:  newForm,
		newVoice: newVoice,
		now:      time.Now,
		visitors: make(map[string]*Visitor),
	}
}

// Lookup returns the visitor for id and refreshes its last-seen time.
func (s *Store) Lookup(id string) (*Visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitors[id]
	if ok {
		v.mu.Lock()
		v.lastSeen = s.now()
		v.mu.Unlock()
	}
	return v, ok
}

// Resolve returns the visitor for id, or a new visitor with a fresh id when
// id is empty or unknown.
func (s *Store) Resolve(id string) *Visitor {
	if id != "" {
		if v, ok := s.Lookup(id); ok {
			return v
		}
	}

	v := &Visitor{
		ID:       uuid.NewString(),
		store:    s,
		forms:    make(map[string]*forms.Controller),
		lastSeen: s.now(),
	}
	s.mu.Lock()
	s.visitors[v.ID] = v
	s.mu.Unlock()
	return v
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// Sweep drops visitors idle for longer than the TTL. Visitors with a submission
// in flight are kept.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, v := range s.visitors {
		v.mu.Lock()
		idle := v.lastSeen.Before(cutoff)
		v.mu.Unlock()
		if idle && !v.busy() {
			delete(s.visitors, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("🧹 Session sweep removed %d idle visitors", n)
			}
		}
	}
}
