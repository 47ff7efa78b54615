package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RequestError means the backend answered with a non-success status. Status
// and message are surfaced verbatim so the user can tell a duplicate record
// apart from a server failure.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

// ConnectionError means no response reached the client at all.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s failed: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// extractMessage pulls a server-supplied message out of a JSON or plain-text
// error body, falling back to the standard status text.
func extractMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		return text
	}
	return http.StatusText(status)
}
