package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldKind selects the rule set applied to a field.
type FieldKind int

const (
	Text FieldKind = iota
	URL
	Email
)

// LinkedInProfileMarker must appear in every LinkedIn profile URL field.
const LinkedInProfileMarker = "linkedin.com/in/"

// Values holds raw or normalized form input keyed by field name.
type Values map[string]string

// Get returns the value for name, or "" when absent.
func (v Values) Get(name string) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Field declares one input of a lead form and the rules it is checked against.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Kind        FieldKind
	Required    bool
	// DomainMarker is a substring a URL field must contain once it parses.
	DomainMarker string
	// Lowercase normalizes the value to lower case before submission.
	Lowercase bool
	// PlainText strips any markup before the value is checked, so required
	// sees what is stored.
	PlainText bool
	// Hidden fields are carried in the form but not shown as inputs.
	Hidden   bool
	Messages map[ErrorKind]string
}

// Schema declares the fields of one lead form and the table its records land in.
type Schema struct {
	Name   string
	Table  string
	Fields []Field
}

// Field looks a field up by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var validate = validator.New()

// Validate trims every declared field, strips markup from plain-text fields,
// applies the per-field rules and returns
// the normalized values. Undeclared keys are dropped. The returned FieldErrors
// is nil when every field passed.
func (s Schema) Validate(raw Values) (Values, FieldErrors) {
	out := make(Values, len(s.Fields))
	var errs FieldErrors

	for _, f := range s.Fields {
		value := strings.TrimSpace(raw.Get(f.Name))
		if f.PlainText {
			value = plainText(value)
		}
		if f.Lowercase {
			value = strings.ToLower(value)
		}
		out[f.Name] = value

		if kind, failed := f.check(value); failed {
			if errs == nil {
				errs = make(FieldErrors)
			}
			errs[f.Name] = &ValidationError{Field: f.Name, Kind: kind, Message: f.message(kind)}
		}
	}
	return out, errs
}

func (f Field) check(value string) (ErrorKind, bool) {
	if value == "" {
		if f.Required {
			return KindRequired, true
		}
		return "", false
	}

	switch f.Kind {
	case URL:
		if validate.Var(value, "url") != nil {
			return KindInvalidURL, true
		}
		if f.DomainMarker != "" && !strings.Contains(strings.ToLower(value), f.DomainMarker) {
			return KindDomainMismatch, true
		}
	case Email:
		if validate.Var(strings.ToLower(value), "email") != nil {
			return KindInvalidEmail, true
		}
	}
	return "", false
}

var defaultMessages = map[ErrorKind]string{
	KindRequired:       "This field is required",
	KindInvalidURL:     "Enter a valid URL",
	KindDomainMismatch: "Must be a LinkedIn URL",
	KindInvalidEmail:   "Enter a valid email",
}

func (f Field) message(kind ErrorKind) string {
	if msg, ok := f.Messages[kind]; ok {
		return msg
	}
	return defaultMessages[kind]
}
