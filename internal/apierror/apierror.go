// Package apierror provides the error taxonomy of the API and the response
// envelopes derived from it. All errors returned to clients go through this
// package to ensure consistency and to prevent leaking internal details
// (stack traces, DB errors, etc.).
package apierror

import "errors"

// Kind is the stable machine-readable classification of an API error.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindUnauthenticated Kind = "unauthenticated"
)

// Error is the typed error produced by the service layer. Handlers map the
// Kind to an HTTP status; the Detail is the human-readable message.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func NotFound(msg string) *Error        { return &Error{Kind: KindNotFound, Detail: msg} }
func InvalidInput(msg string) *Error    { return &Error{Kind: KindInvalidInput, Detail: msg} }
func Unauthenticated(msg string) *Error { return &Error{Kind: KindUnauthenticated, Detail: msg} }

// KindOf extracts the Kind from an error chain; "" when err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Kind   Kind   `json:"kind,omitempty"`
	Detail string `json:"detail"`
}

func New(msg string) *APIError { return &APIError{Detail: msg} }

// FromError builds the envelope for a typed error.
func FromError(e *Error) *APIError { return &APIError{Kind: e.Kind, Detail: e.Detail} }

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation error", Fields: fields}
}
