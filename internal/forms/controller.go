package forms

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle position of a form instance.
type State int

const (
	Idle State = iota
	Validating
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Variant selects how a notification is styled.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a transient message shown after a submit attempt.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

// SubmitFunc performs the single external write for normalized values.
type SubmitFunc func(ctx context.Context, values Values) error

// Option configures a Controller.
type Option func(*Controller)

// WithTransitionHook is called on every state change. It runs while the
// instance is locked and must not call back into the Controller.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Controller) { c.onTransition = fn }
}

// WithSuccessMessage overrides the notification shown after a successful write.
func WithSuccessMessage(title, description string) Option {
	return func(c *Controller) {
		c.success = Notification{Title: title, Description: description, Variant: VariantDefault}
	}
}

// Controller binds a Schema to one form instance: it keeps the entered values,
// the last field errors and the submission state.
type Controller struct {
	schema       Schema
	submit       SubmitFunc
	success      Notification
	onTransition func(from, to State)

	mu     sync.Mutex
	state  State
	values Values
	errors FieldErrors
}

func NewController(schema Schema, submit SubmitFunc, opts ...Option) *Controller {
	c := &Controller{
		schema: schema,
		submit: submit,
		success: Notification{
			Title:       "Submitted",
			Description: "Thanks! We'll review ASAP.",
			Variant:     VariantDefault,
		},
		values: Values{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Schema() Schema { return c.schema }

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether the submit action must be disabled.
func (c *Controller) Busy() bool { return c.State() == Submitting }

// Values returns a copy of the values currently held by the form.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Errors returns the field errors from the last submit attempt.
func (c *Controller) Errors() FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.errors == nil {
		return nil
	}
	out := make(FieldErrors, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// SetValue pre-fills one declared field without touching the others. It is a
// no-op while a submission is in flight.
func (c *Controller) SetValue(name, value string) {
	if _, ok := c.schema.Field(name); !ok {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Submitting {
		return
	}
	c.values[name] = value
	delete(c.errors, name)
}

// Submit validates raw and, when every field passes, performs exactly one
// write. The error is FieldErrors for local failures, *SubmissionError when the
// write failed and ErrSubmissionInFlight when another submit is pending.
// The notification is nil only for validation failures and in-flight rejections.
func (c *Controller) Submit(ctx context.Context, raw Values) (*Notification, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	c.values = c.merge(raw)
	c.transition(Validating)

	normalized, errs := c.schema.Validate(c.values)
	if errs != nil {
		c.errors = errs
		c.transition(Idle)
		c.mu.Unlock()
		return nil, errs
	}
	c.errors = nil
	c.transition(Submitting)
	c.mu.Unlock()

	err := c.submit(ctx, normalized)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.transition(Failed)
		c.transition(Idle)
		serr := asSubmissionError(err)
		return &Notification{
			Title:       "Submission failed",
			Description: serr.Message,
			Variant:     VariantDestructive,
		}, serr
	}

	c.values = Values{}
	c.transition(Success)
	c.transition(Idle)
	n := c.success
	return &n, nil
}

// merge keeps declared fields only. Hidden fields absent from raw keep their
// pre-filled value so a carried-over role survives a resubmit.
func (c *Controller) merge(raw Values) Values {
	out := make(Values, len(c.schema.Fields))
	for _, f := range c.schema.Fields {
		v, ok := raw[f.Name]
		if !ok && f.Hidden {
			v = c.values[f.Name]
		}
		out[f.Name] = v
	}
	return out
}

// transition must be called with c.mu held.
func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}

func asSubmissionError(err error) *SubmissionError {
	var serr *SubmissionError
	if errors.As(err, &serr) {
		return serr
	}
	return &SubmissionError{Message: err.Error(), Err: err}
}
