package formcheck

import (
	"log/slog"
	"time"
)

// Outcome classifies the result of checking one field.
type Outcome string

const (
	OutcomeValid    Outcome = "valid"
	OutcomeAbsent   Outcome = "absent"
	OutcomeMissing  Outcome = "missing"
	OutcomeCoercion Outcome = "coercion"
	OutcomeRule     Outcome = "rule"
)

// Observer receives notifications from Validate, e.g. to export metrics.
type Observer interface {
	FieldChecked(field string, outcome Outcome)
	ValidationDone(valid bool, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) FieldChecked(string, Outcome) {}
func (nopObserver) ValidationDone(bool, time.Duration) {}

// Option configures a Validator.
type Option func(*Validator)

// WithRenderer sets the renderer used for error messages.
// Nil renderers are ignored.
func WithRenderer(r Renderer) Option {
	return func(v *Validator) {
		if r != nil {
			v.renderer = r
		}
	}
}

// WithLogger sets the logger used for debug output of Validate.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithObserver reports field outcomes and run durations to o.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observer = o
		}
	}
}
