package formcheck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidationFailed is matched by ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrCoercion is wrapped by every error returned from Type.Coerce.
	ErrCoercion = errors.New("value cannot be coerced")

	// ErrInvalidExpr is returned when an expression rule fails to compile.
	ErrInvalidExpr = errors.New("invalid rule expression")
)

// ErrorKind tells why a field failed.
type ErrorKind uint8

const (
	// KindMissing marks a required field that was absent or empty.
	KindMissing ErrorKind = iota + 1
	// KindCoercion marks a raw value that could not be parsed as the field's Type.
	KindCoercion
	// KindRule marks a parsed value that violated a Rule.
	KindRule
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindCoercion:
		return "coercion"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// ValidationError represents a single field failure with translation support.
type ValidationError struct {
	Field             string
	Label             string
	Kind              ErrorKind
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the distinct failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
