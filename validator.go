package formcheck

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// RawInput maps a field name to its raw values, as decoded from a form or a
// query string. url.Values is assignable to it.
type RawInput = map[string][]string

// Validator runs registered checkers over a RawInput and keeps the results
// of the most recent run. It is not safe for concurrent use.
type Validator struct {
	checkers []*Checker
	index    map[string]int
	values   map[string][]Value
	errors   map[string]ValidationErrors

	renderer Renderer
	logger   *slog.Logger
	observer Observer
}

// New creates an empty Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		index:    make(map[string]int),
		values:   make(map[string][]Value),
		errors:   make(map[string]ValidationErrors),
		renderer: DefaultRenderer(),
		logger:   logger.Discard(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Register adds a checker and returns v for chaining. Registering a second
// checker for the same field replaces the first one in its original position.
func (v *Validator) Register(c *Checker) *Validator {
	if c == nil {
		return v
	}
	if i, ok := v.index[c.field]; ok {
		v.checkers[i] = c
		return v
	}
	v.index[c.field] = len(v.checkers)
	v.checkers = append(v.checkers, c)
	return v
}

// Fields returns the registered field names in registration order.
func (v *Validator) Fields() []string {
	fields := make([]string, 0, len(v.checkers))
	for _, c := range v.checkers {
		fields = append(fields, c.field)
	}
	return fields
}

// Validate runs every checker in registration order against input. Results
// of any previous run are discarded first. A failing field never stops the
// remaining fields from being checked.
func (v *Validator) Validate(input RawInput) {
	start := time.Now()
	v.Reset()

	for _, c := range v.checkers {
		values, errs, outcome := c.run(input[c.field], v.renderer)
		switch {
		case len(errs) > 0:
			v.errors[c.field] = errs
			v.logger.Debug("field rejected",
				logger.Field(c.field),
				slog.String("outcome", string(outcome)),
				slog.Any("messages", errs.Get(c.field)),
			)
		case len(values) > 0:
			v.values[c.field] = values
		}
		v.observer.FieldChecked(c.field, outcome)
	}

	elapsed := time.Since(start)
	v.logger.Debug("validation finished",
		slog.Int("fields", len(v.checkers)),
		slog.Int("invalid", len(v.errors)),
		logger.Duration(elapsed),
	)
	v.observer.ValidationDone(v.IsValid(), elapsed)
}

// Reset clears the results of the last Validate call. Registered checkers
// are kept.
func (v *Validator) Reset() {
	clear(v.values)
	clear(v.errors)
}

// IsValid reports whether the last Validate call recorded no errors.
// It is true before Validate has been called.
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Get returns the value of field. ok is false when the field was absent or
// failed validation.
func (v *Validator) Get(field string) (Value, bool) {
	vals := v.values[field]
	if len(vals) == 0 {
		return Value{}, false
	}
	return vals[0], true
}

// MustGet returns the value of field and panics if there is none.
// Use it only after IsValid returned true and for fields that are required.
func (v *Validator) MustGet(field string) Value {
	val, ok := v.Get(field)
	if !ok {
		panic(fmt.Sprintf("formcheck: no valid value for field %q, check IsValid before calling MustGet", field))
	}
	return val
}

// GetAll returns every value of a field registered with Checker.Multiple.
// For single-valued fields it holds at most one element.
func (v *Validator) GetAll(field string) []Value {
	vals := v.values[field]
	if len(vals) == 0 {
		return nil
	}
	out := make([]Value, len(vals))
	copy(out, vals)
	return out
}

// ErrorsFor returns the messages recorded for field, in rule order. It is
// empty for valid or unregistered fields.
func (v *Validator) ErrorsFor(field string) []string {
	errs := v.errors[field]
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Errors returns all errors of the last run in checker order.
func (v *Validator) Errors() ValidationErrors {
	var all ValidationErrors
	for _, c := range v.checkers {
		all = append(all, v.errors[c.field]...)
	}
	return all
}

// Err returns nil when the last run was valid and ValidationErrors otherwise.
func (v *Validator) Err() error {
	if v.IsValid() {
		return nil
	}
	return v.Errors()
}

// Values returns the first value of every valid field, keyed by field name.
func (v *Validator) Values() map[string]Value {
	out := make(map[string]Value, len(v.values))
	for field, vals := range v.values {
		out[field] = vals[0]
	}
	return out
}
