package usecase

import (
	"context"

	"contact-directory/internal/entities"
)

// ContactUsecaseInterface abstracts contact-related operations for delivery layer.
type ContactUsecaseInterface interface {
	ListContacts(ctx context.Context) ([]entities.ContactView, error)
	Contact(ctx context.Context, id string) (*entities.ContactView, error)
	CreateContact(ctx context.Context, name, phone string, teamIDs []string) (*entities.ContactView, error)
	UpdateContact(ctx context.Context, id string, update entities.ContactUpdate) (*entities.ContactView, error)
	DeleteContact(ctx context.Context, id string) (bool, error)
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	ListTeams(ctx context.Context) ([]entities.Team, error)
	Team(ctx context.Context, id string) (*entities.Team, error)
	CreateTeam(ctx context.Context, name string) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) (bool, error)
}
