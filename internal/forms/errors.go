package forms

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorKind classifies a local validation failure.
type ErrorKind string

const (
	KindRequired       ErrorKind = "required"
	KindInvalidURL     ErrorKind = "invalid_url"
	KindDomainMismatch ErrorKind = "domain_mismatch"
	KindInvalidEmail   ErrorKind = "invalid_email"
)

// ErrSubmissionInFlight is returned when a form instance is already waiting on a write.
var ErrSubmissionInFlight = errors.New("forms: submission already in progress")

// ValidationError is a single field failure, shown inline next to the field.
type ValidationError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Kind)
}

// FieldErrors maps a field name to its validation failure.
type FieldErrors map[string]*ValidationError

func (fe FieldErrors) Error() string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fe[name].Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Kind returns the failure kind for field, or "" if the field passed.
func (fe FieldErrors) Kind(field string) ErrorKind {
	if e, ok := fe[field]; ok {
		return e.Kind
	}
	return ""
}

// Message returns the user-facing message for field, or "".
func (fe FieldErrors) Message(field string) string {
	if e, ok := fe[field]; ok {
		return e.Message
	}
	return ""
}

// SubmissionError wraps a failed remote write. Message is the raw text the
// data store reported and is surfaced to the user as-is.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return "submission failed: " + e.Message
}

func (e *SubmissionError) Unwrap() error { return e.Err }
