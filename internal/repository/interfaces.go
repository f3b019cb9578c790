// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"contact-directory/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ContactInterface exposes contact-related operations.
// Malformed identifiers yield entities.ErrInvalidID.
type ContactInterface interface {
	ListContacts(ctx context.Context) ([]entities.Contact, error)
	GetContact(ctx context.Context, id string) (*entities.Contact, error)
	GetContactByPhone(ctx context.Context, phone string) (*entities.Contact, error)
	CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error)
	UpdateContact(ctx context.Context, id string, update entities.ContactUpdate) (*entities.Contact, error)
	DeleteContact(ctx context.Context, id string) (bool, error)
	RemoveTeamFromContacts(ctx context.Context, teamID string) (int64, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	GetTeam(ctx context.Context, id string) (*entities.Team, error)
	GetTeamsByIDs(ctx context.Context, ids []string) ([]entities.Team, error)
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) (bool, error)
}
