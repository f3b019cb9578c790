// Package domain contains application Usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"
	"strings"

	"contact-directory/internal/entities"
)

// ListTeams returns every team.
func (u *Usecase) ListTeams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// Team returns team by id.
func (u *Usecase) Team(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetTeam(ctx, strings.TrimSpace(id))
}

// CreateTeam creates a team. Names are not unique.
func (u *Usecase) CreateTeam(ctx context.Context, name string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrValidation)
	}
	return u.repo.CreateTeam(ctx, entities.Team{Name: name})
}

// DeleteTeam deletes a team and strips its id from every contact.
// The cleanup runs even when the team was already gone, so repeating a
// delete heals references left by an interrupted one. The cleanup is bound
// to the service lifetime rather than the caller's request.
func (u *Usecase) DeleteTeam(ctx context.Context, id string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	id = strings.TrimSpace(id)
	deleted, err := u.repo.DeleteTeam(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		u.metrics.IncTeamsDeleted()
	}

	cleanupCtx, cancelCleanup := withTimeout(u.ctx, u.timeout)
	defer cancelCleanup()

	changed, err := u.repo.RemoveTeamFromContacts(cleanupCtx, id)
	if err != nil {
		u.log.Errorw("failed to remove team references", "team_id", id, "deleted", deleted, "error", err)
		return false, fmt.Errorf("remove team references: %w", err)
	}

	u.log.Infow("team delete", "team_id", id, "deleted", deleted, "contacts_changed", changed)
	return deleted, nil
}
