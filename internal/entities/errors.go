// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals missing, malformed or contradictory input.
	ErrValidation = errors.New("validation error")
	// ErrInvalidID signals an identifier that does not parse for the active store.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrNotFound is the common parent of all lookup misses.
	ErrNotFound = errors.New("not found")
	// ErrContactNotFound is returned when a contact does not exist.
	ErrContactNotFound = fmt.Errorf("contact %w", ErrNotFound)
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = fmt.Errorf("team %w", ErrNotFound)
	// ErrContactExists signals a phone number already owned by another contact.
	ErrContactExists = errors.New("contact exists")
	// ErrInvalidPhone signals the validator rejected the phone number.
	ErrInvalidPhone = fmt.Errorf("%w: invalid phone format", ErrValidation)
	// ErrUpstream signals a failed or malformed external lookup.
	ErrUpstream = errors.New("upstream error")
)
