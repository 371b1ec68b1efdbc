// internal/api/errors.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNetwork marks failures where no HTTP response was received.
	ErrNetwork = errors.New("shop API unreachable")

	ErrInvalidPath = errors.New("invalid API path")
)

// Error is a non-2xx response from the shop API.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the server-provided message, empty when the body had none.
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsError unwraps err into an *Error when the failure came from an HTTP response.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func newError(method, path string, status int, body []byte) *Error {
	return &Error{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Message:    serverMessage(body),
	}
}

// serverMessage pulls {"message": "..."} or {"error": "..."} out of an error body.
func serverMessage(body []byte) string {
	var parsed struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.Message != "" {
		return parsed.Message
	}

	var text string
	if err := json.Unmarshal(parsed.Error, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(parsed.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}
