package gateway

import (
	"fmt"

	"contact-directory/internal/entities"
)

// Error describes a failed upstream call. It matches entities.ErrUpstream
// under errors.Is regardless of whether the transport or the remote failed.
type Error struct {
	Provider string
	Status   int
	Message  string
	Err      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s", e.Provider, entities.ErrUpstream)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the upstream sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{entities.ErrUpstream}
	}
	return []error{entities.ErrUpstream, e.Err}
}
