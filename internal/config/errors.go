// Package config loads, merges and validates the generator input: the
// project name, organization identifier, architecture, state management,
// features and modules. Validation produces an immutable
// models.ProjectConfig plus informational notes.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid. Every
	// validation failure wraps it.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")
)

// Validation failure reasons.
const (
	ReasonBadProjectName         = "bad project name"
	ReasonUnknownArchitecture    = "unknown architecture"
	ReasonUnknownStateManagement = "unknown state management"
	ReasonBadFeatureName         = "bad feature name"
	ReasonBadModuleName          = "bad module name"
)

// ValidationError represents a single InvalidConfig failure with field context.
type ValidationError struct {
	Field  string
	Reason string
	Value  any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("invalid config: field %q: %s (got: %q)", e.Field, e.Reason, fmt.Sprint(e.Value))
	}
	return fmt.Sprintf("invalid config: field %q: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfig so errors.Is matches every failure.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ve := range e.Errors {
		errs[i] = ve
	}
	return errs
}

// Reasons returns the failure reasons in the order they were detected.
func (e *ValidationErrors) Reasons() []string {
	reasons := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		reasons[i] = ve.Reason
	}
	return reasons
}

// Reason returns the reason of the first validation failure in err,
// or "" when err carries none.
func Reason(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return ""
}
