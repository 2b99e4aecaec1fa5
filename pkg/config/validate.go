package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches struct metadata per instance.
//
//nolint:gochecknoglobals // Reusing one validator is the library's recommended usage
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	// Field is the dotted path of the offending field (e.g. "Style.MaxErrors").
	Field string

	// Message is a human-readable description of the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration against its struct tags.
// It returns an error joining one *ValidationError per invalid field.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("invalid config: nil")
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ValidationError{
			Field:   strings.TrimPrefix(fe.Namespace(), "Config."),
			Message: describe(fe),
		})
	}
	return errors.Join(errs...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " entries"
	case "gte":
		return "must be >= " + fe.Param()
	case "startswith":
		return fmt.Sprintf("%q must start with %q", fe.Value(), fe.Param())
	case "excludesall":
		return fmt.Sprintf("%q must be a single directory name", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Value(), fe.Param())
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	default:
		return "failed " + fe.Tag() + " check"
	}
}
