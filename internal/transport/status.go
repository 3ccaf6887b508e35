package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx server response, carried through the adapter and
// store layers unchanged.
type StatusError struct {
	Status int
	Body   []byte
	Detail string // best-effort message extracted from the body
}

func newStatusError(status int, body []byte) *StatusError {
	e := &StatusError{Status: status, Body: body}

	// The server reports errors either as {"detail": "..."} or as a
	// field->messages validation map. Anything else stays raw.
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		e.Detail = payload.Detail
		return e
	}
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil {
		for f, msgs := range fields {
			if len(msgs) > 0 {
				e.Detail = f + ": " + msgs[0]
				break
			}
		}
	}
	return e
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
}

// IsStatus reports whether err is a StatusError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
