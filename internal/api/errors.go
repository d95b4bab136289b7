package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ServerError is a non-2xx reply from the SeedToServe API. Message carries the
// body's message field when the server supplied one.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("api: server returned %d: %s", e.StatusCode, e.Message)
}

func newServerError(status int, env errorEnvelope) *ServerError {
	msg := env.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &ServerError{StatusCode: status, Message: msg}
}

// errorEnvelope is the error body shape the API contract guarantees.
type errorEnvelope struct {
	Message string `json:"message"`
}

// UserMessage renders an error the way the storefront shows it: the server's
// own message for API rejections, a generic fallback for transport failures.
func UserMessage(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	return "Server error"
}
