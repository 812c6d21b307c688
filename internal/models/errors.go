package models

import (
	"fmt"
	"strings"
)

// ErrorBody is the structured part of a remote failure payload.
type ErrorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// RemoteError is a failure reported by a remote collaborator.
// Body takes precedence over Message when both carry text.
type RemoteError struct {
	Status  int
	Message string
	Body    *ErrorBody
}

func (e *RemoteError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Body != nil && strings.TrimSpace(e.Body.Message) != "" {
		msg = e.Body.Message
	}
	if e.Status > 0 {
		if strings.TrimSpace(msg) == "" {
			return fmt.Sprintf("remote status %d", e.Status)
		}
		return fmt.Sprintf("remote status %d: %s", e.Status, msg)
	}
	return msg
}
