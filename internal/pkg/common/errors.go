package common

import (
	"errors"
	"fmt"
)

// Predefined error codes surfaced in API responses and logs.
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST" // 400
	ErrCodeUpstreamError  = "UPSTREAM_ERROR"  // 500
	ErrCodeParseError     = "PARSE_ERROR"     // 500
	ErrCodeInternalError  = "INTERNAL_ERROR"  // 500
)

// ValidationError reports a missing or malformed request field. Its message
// is safe to return to clients verbatim.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) error {
	return &ValidationError{message: message}
}

// IsValidationError reports whether err is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError reports a failed call to an external service. The raw
// upstream body is kept for logging; handlers reply with a generic message.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamStatusError creates an upstream error for a non-2xx response.
func NewUpstreamStatusError(service string, status int, body string) error {
	return &UpstreamError{Service: service, Status: status, Body: body}
}

// NewUpstreamTransportError creates an upstream error for a transport failure.
func NewUpstreamTransportError(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}

// IsUpstreamError reports whether err is an upstream error.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// AsUpstreamError returns the upstream error wrapped in err, if any.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	ok := errors.As(err, &ue)
	return ue, ok
}

// ParseError reports model output that could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new parse error.
func NewParseError(err error) error {
	return &ParseError{Err: err}
}

// IsParseError reports whether err is a parse error.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
