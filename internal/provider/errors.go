package provider

import "fmt"

// Error is a structured fetch failure with a code and optional cause.
// A fetch error is terminal for the request that produced it.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined fetch failure kinds.
var (
	ErrUpstreamUnreachable = &Error{Code: "UPSTREAM_UNREACHABLE", Message: "upstream request failed"}
	ErrUpstreamStatus      = &Error{Code: "UPSTREAM_HTTP_ERROR", Message: "upstream returned an error status"}
	ErrMalformedPayload    = &Error{Code: "MALFORMED_PAYLOAD", Message: "upstream payload has unexpected shape"}
	ErrMissingField        = &Error{Code: "MISSING_FIELD", Message: "required field missing from upstream payload"}
)
