package errors

import (
	"errors"
	"net/http"
)

// Kind is the machine-readable error class carried in error responses.
type Kind string

const (
	KindValidation       Kind = "VALIDATION"
	KindNotFound         Kind = "NOT_FOUND"
	KindConflict         Kind = "CONFLICT"
	KindUnsupportedState Kind = "UNSUPPORTED_STATE"
	KindForbidden        Kind = "FORBIDDEN"
	KindRateLimited      Kind = "RATE_LIMITED"
	KindInternal         Kind = "INTERNAL"
)

// HTTPError is an error that already knows how it is rendered.
type HTTPError struct {
	Code    int
	Kind    Kind
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with a kind derived from the status code.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{Code: code, Kind: kindFor(code), Message: msg}
}

func NewValidationError(msg string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Kind: KindValidation, Message: msg}
}

func NewNotFoundError(msg string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Kind: KindNotFound, Message: msg}
}

func NewConflictError(msg string) *HTTPError {
	return &HTTPError{Code: http.StatusConflict, Kind: KindConflict, Message: msg}
}

// NewUnsupportedStateError is rendered as 500 to stay wire compatible with the
// existing clients of the bookings listing.
func NewUnsupportedStateError(msg string) *HTTPError {
	return &HTTPError{Code: http.StatusInternalServerError, Kind: KindUnsupportedState, Message: msg}
}

// NewAuthorizationError renders a failed ownership check. When masked it is
// indistinguishable from a missing resource.
func NewAuthorizationError(msg string, masked bool) *HTTPError {
	if masked {
		return NewNotFoundError(msg)
	}
	return &HTTPError{Code: http.StatusForbidden, Kind: KindForbidden, Message: msg}
}

// ErrInternalServerError is returned for anything the handlers do not recognise.
var ErrInternalServerError = &HTTPError{
	Code:    http.StatusInternalServerError,
	Kind:    KindInternal,
	Message: "Something went wrong",
}

// AsHTTPError unwraps err into an HTTPError if there is one in the chain.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

func kindFor(code int) Kind {
	switch code {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindInternal
	}
}
