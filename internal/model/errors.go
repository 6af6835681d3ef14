package model

import "fmt"

// ConfigurationError means required external configuration (API key, store
// address) is absent or unusable. Fatal for the operation, never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// ValidationError means the caller's input was rejected before any external
// call was attempted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Reason
}

// OracleError means the external scoring call failed or returned a response
// that could not be parsed into the expected shape. Section names which
// section of the audit was being analyzed when it happened.
type OracleError struct {
	Section string
	Reason  string
	Err     error
}

func (e *OracleError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("oracle error (section %q): %s", e.Section, e.Reason)
	}
	return "oracle error: " + e.Reason
}

func (e *OracleError) Unwrap() error { return e.Err }

// NotFoundError means the requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
