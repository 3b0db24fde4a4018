package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/justsurfingit/breakout-talents/internal/forms"
	"github.com/justsurfingit/breakout-talents/internal/models"
	"github.com/justsurfingit/breakout-talents/internal/store"
)

type userAgentKey struct{}

// WithUserAgent attaches the submitting browser's user agent to ctx.
func WithUserAgent(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, userAgentKey{}, ua)
}

func userAgentFrom(ctx context.Context) string {
	ua, _ := ctx.Value(userAgentKey{}).(string)
	return ua
}

// Lead is the short summary handed to a Notifier after a successful write.
type Lead struct {
	Table   string
	Summary string
}

// Notifier is told about new leads. Its failures never affect the submission.
type Notifier interface {
	NotifyLead(ctx context.Context, lead Lead) error
}

// SubmissionService turns validated form values into lead records and writes
// each one with a single insert.
type SubmissionService struct {
	Store    store.Inserter
	Notifier Notifier

	// NotifyTimeout bounds a single notification attempt.
	NotifyTimeout time.Duration

	// Debug logs every form state transition.
	Debug bool
}

func NewSubmissionService(s store.Inserter, n Notifier) *SubmissionService {
	return &SubmissionService{
		Store:         s,
		Notifier:      n,
		NotifyTimeout: 30 * time.Second,
	}
}

// SubmitFunc returns the forms.SubmitFunc that writes records for the named form.
func (s *SubmissionService) SubmitFunc(form string) (forms.SubmitFunc, error) {
	switch form {
	case forms.FormTalent, forms.FormApply:
		return s.SubmitTalent, nil
	case forms.FormStartup:
		return s.SubmitStartup, nil
	case forms.FormReferral:
		return s.SubmitReferral, nil
	}
	return nil, fmt.Errorf("services: no submit handler for form %q", form)
}

// successMessages overrides the default success notification per form.
var successMessages = map[string][2]string{
	forms.FormReferral: {"Referral submitted", "Thanks! We'll review ASAP."},
	forms.FormApply:    {"Application submitted!", "We'll review your profile and get back to you soon."},
}

// NewForm builds a fresh form instance wired to this service. It satisfies
// session.FormFactory.
func (s *SubmissionService) NewForm(name string) (*forms.Controller, error) {
	schema, ok := forms.Schemas[name]
	if !ok {
		return nil, fmt.Errorf("services: unknown form %q", name)
	}
	submit, err := s.SubmitFunc(name)
	if err != nil {
		return nil, err
	}
	var opts []forms.Option
	if msg, ok := successMessages[name]; ok {
		opts = append(opts, forms.WithSuccessMessage(msg[0], msg[1]))
	}
	if s.Debug {
		opts = append(opts, forms.WithTransitionHook(func(from, to forms.State) {
			log.Printf("📝 %s form: %s -> %s", name, from, to)
		}))
	}
	return forms.NewController(schema, submit, opts...), nil
}

func (s *SubmissionService) SubmitTalent(ctx context.Context, v forms.Values) error {
	rec := &models.TalentSubmission{
		Role:        v.Get("role"),
		LinkedinURL: v.Get("linkedin_url"),
		UserAgent:   userAgentFrom(ctx),
	}
	if err := s.Store.Insert(ctx, forms.TableTalentSubmissions, rec); err != nil {
		return err
	}
	s.notify(Lead{
		Table:   forms.TableTalentSubmissions,
		Summary: fmt.Sprintf("New talent for %q: %s", rec.Role, rec.LinkedinURL),
	})
	return nil
}

func (s *SubmissionService) SubmitStartup(ctx context.Context, v forms.Values) error {
	rec := &models.StartupSubmission{
		JDLink:    v.Get("jd_link"),
		Email:     v.Get("email"),
		UserAgent: userAgentFrom(ctx),
	}
	if err := s.Store.Insert(ctx, forms.TableStartupSubmissions, rec); err != nil {
		return err
	}
	s.notify(Lead{
		Table:   forms.TableStartupSubmissions,
		Summary: fmt.Sprintf("New startup role from %s: %s", rec.Email, rec.JDLink),
	})
	return nil
}

func (s *SubmissionService) SubmitReferral(ctx context.Context, v forms.Values) error {
	rec := &models.Referral{
		ReferrerEmail:     v.Get("email"),
		TalentLinkedinURL: v.Get("linkedin_url"),
		TalentContact:     optional(v.Get("talent_contact")),
		TalentReason:      v.Get("talent_reason"),
		UserAgent:         userAgentFrom(ctx),
	}
	if err := s.Store.Insert(ctx, forms.TableReferrals, rec); err != nil {
		return err
	}
	s.notify(Lead{
		Table:   forms.TableReferrals,
		Summary: fmt.Sprintf("New referral from %s: %s", rec.ReferrerEmail, rec.TalentLinkedinURL),
	})
	return nil
}

func (s *SubmissionService) notify(lead Lead) {
	if s.Notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.NotifyTimeout)
		defer cancel()
		if err := s.Notifier.NotifyLead(ctx, lead); err != nil {
			log.Printf("⚠️  Lead notification for %s failed: %v", lead.Table, err)
		}
	}()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
