package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a validation error with a field name.
// Message is safe to show to API clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ValidationMessage returns the client-facing text for err.
// Multiple validation errors are joined with "; ".
func ValidationMessage(err error) string {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		messages := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			messages = append(messages, ValidationMessage(e))
		}
		return strings.Join(messages, "; ")
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

// validationErrors collects field errors. Returns nil if none were appended.
type validationErrors struct {
	result *multierror.Error
}

func (v *validationErrors) add(field, message string) {
	v.result = multierror.Append(v.result, &ValidationError{Field: field, Message: message})
}

func (v *validationErrors) err() error {
	if v.result == nil {
		return nil
	}
	v.result.ErrorFormat = func(errs []error) string {
		parts := make([]string, len(errs))
		for i, e := range errs {
			parts[i] = e.Error()
		}
		return strings.Join(parts, "; ")
	}
	return v.result.ErrorOrNil()
}

func outOfRange() error {
	return &ValidationError{Field: "index", Message: "Index out of range"}
}
