package sahha

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a client-side request failure.
type ErrorKind string

const (
	// KindInvalidURL means the endpoint could not be composed into a URL.
	KindInvalidURL ErrorKind = "invalid_url"
	// KindNoData means the server returned no usable response body.
	KindNoData ErrorKind = "no_data"
	// KindDecodingError means the response body did not match the expected shape.
	KindDecodingError ErrorKind = "decoding_error"
	// KindServerError means the server answered with a non-2xx status.
	KindServerError ErrorKind = "server_error"
	// KindUnauthorized means the server answered 401. No automatic token
	// refresh is attempted; the caller decides how to react.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindNetworkError means the request never produced a response.
	KindNetworkError ErrorKind = "network_error"
)

// Error represents a request failure surfaced by the client.
// The Message is suitable for direct display to a user.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsUnauthorized reports whether the failure was a 401.
func (e *Error) IsUnauthorized() bool {
	return e.Kind == KindUnauthorized
}

// IsNetworkError reports whether the request failed at the transport level.
func (e *Error) IsNetworkError() bool {
	return e.Kind == KindNetworkError
}

// IsServerError reports whether the server answered outside 2xx.
func (e *Error) IsServerError() bool {
	return e.Kind == KindServerError
}

// IsDecodingError reports whether the response body could not be decoded.
func (e *Error) IsDecodingError() bool {
	return e.Kind == KindDecodingError
}

// Common errors.
var (
	// ErrInvalidURL is returned when the endpoint cannot form a valid URL.
	ErrInvalidURL = &Error{Kind: KindInvalidURL, Message: "invalid URL"}

	// ErrNoData is returned when the server sent no usable body.
	ErrNoData = &Error{Kind: KindNoData, Message: "no data received"}

	// ErrUnauthorized is returned on a 401 response.
	ErrUnauthorized = &Error{
		Kind:       KindUnauthorized,
		StatusCode: http.StatusUnauthorized,
		Message:    "not authorized",
	}
)

// newServerError builds a server error for a non-2xx status. If the body
// carries a structured message it is preferred over the generic text.
func newServerError(statusCode int, body []byte) *Error {
	msg := fmt.Sprintf("server error: %d", statusCode)

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else if payload.Error != "" {
			msg = payload.Error
		}
	}

	return &Error{Kind: KindServerError, StatusCode: statusCode, Message: msg}
}

// newDecodingError builds a decoding error. The underlying parse failure is
// deliberately not included in the message; the cause stays on the wrapped
// chain for logs only.
func newDecodingError() *Error {
	return &Error{Kind: KindDecodingError, Message: "decoding error"}
}

// newNetworkError builds a transport-level error.
func newNetworkError() *Error {
	return &Error{Kind: KindNetworkError, Message: "network error"}
}

// IsAPIError checks if an error is a client API error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
