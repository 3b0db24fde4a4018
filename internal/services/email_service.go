package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/justsurfingit/breakout-talents/internal/forms"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

// EmailService mails a short summary of every new lead to the team inbox.
type EmailService struct {
	GmailClient *gmail.Service
	To          string
	From        string

	// Attempts and Backoff configure the retry on rate limits and 5xx.
	Attempts int
	Backoff  time.Duration
}

func NewEmailService(gmailClient *gmail.Service, to string) *EmailService {
	return &EmailService{
		GmailClient: gmailClient,
		To:          to,
		From:        "me",
		Attempts:    3,
		Backoff:     1 * time.Second,
	}
}

var errNoGmailClient = errors.New("gmail client not configured")

// NotifyLead implements Notifier.
func (s *EmailService) NotifyLead(ctx context.Context, lead Lead) error {
	if s.GmailClient == nil {
		return errNoGmailClient
	}
	msg := &gmail.Message{Raw: encodeMessage(s.From, s.To, subjectFor(lead), lead.Summary)}

	return retry(ctx, s.Attempts, s.Backoff, func() error {
		_, err := s.GmailClient.Users.Messages.Send("me", msg).Context(ctx).Do()
		return err
	})
}

func subjectFor(lead Lead) string {
	switch lead.Table {
	case forms.TableTalentSubmissions:
		return "[BreakoutTalents] New talent application"
	case forms.TableStartupSubmissions:
		return "[BreakoutTalents] New startup role"
	case forms.TableReferrals:
		return "[BreakoutTalents] New referral"
	}
	return "[BreakoutTalents] New lead"
}

// encodeMessage builds a plain-text RFC 822 message in the URL-safe base64
// form the Gmail API expects.
func encodeMessage(from, to, subject, body string) string {
	var b strings.Builder
	if from != "" && from != "me" {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(body)
	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// --- HELPERS ---

// retry executes f with exponential backoff. Errors that a retry cannot fix
// are returned immediately.
func retry(ctx context.Context, attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}

		log.Printf("⚠️ API Error: %v. Retrying in %v...", err, sleep)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}

func isRetryable(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == 429 || gErr.Code >= 500
	}
	return false
}
