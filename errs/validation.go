package errs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidField = errors.New("invalid field")

// FieldViolation names one field that failed validation and the rule it broke
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field of one input, so the caller
// sees all problems at once instead of the first one only.
type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError() *ValidationError {
	return &ValidationError{}
}

func (e *ValidationError) Add(field, rule, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Rule: rule, Message: message})
}

// OrNil returns nil when no violation was recorded, so callers can write
// `return ve.OrNil()` without handing back a non-nil error holding nothing.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidField.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Message))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidField
}

func IsInvalidFieldError(err error) bool {
	return errors.Is(err, ErrInvalidField)
}
