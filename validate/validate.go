package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/salvodev/portfolio-backend/errs"
)

// engine is shared across all inputs; validator instances cache struct
// metadata and are safe for concurrent use.
var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names, not Go names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct runs every tag rule of a create-style input and converts the result
// into a single errs.ValidationError enumerating all violated fields.
func Struct(input any) error {
	err := engine.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewInternalError(err.Error())
	}

	ve := errs.NewValidationError()
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), fe.Tag(), messageFor(fe))
	}
	return ve.OrNil()
}

// Field validates a single already-extracted value (used for the present
// fields of partial updates) and records violations under the given name.
func Field(ve *errs.ValidationError, name string, value any, rules string) {
	err := engine.Var(value, rules)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		ve.Add(name, "invalid", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		ve.Add(name, fe.Tag(), messageFor(fe))
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("too short: %d < %s chars", lengthOf(fe.Value()), fe.Param())
		}
		return fmt.Sprintf("must have at least %s elements", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("too long: %d > %s chars", lengthOf(fe.Value()), fe.Param())
		}
		return fmt.Sprintf("must have at most %s elements", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a well-formed absolute URL"
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}

func lengthOf(value any) int {
	if s, ok := value.(string); ok {
		return len(s)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return 0
}
