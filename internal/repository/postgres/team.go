package postgres

import (
	"context"
	"errors"
	"fmt"

	"contact-directory/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery  = "INSERT INTO teams(id, name) VALUES($1::uuid, $2)"
	selectTeamsQuery = "SELECT id::text, name FROM teams ORDER BY created_at, id"
	selectTeamQuery  = "SELECT id::text, name FROM teams WHERE id=$1::uuid"
	selectTeamsByIDs = "SELECT id::text, name FROM teams WHERE id = ANY($1::uuid[]) ORDER BY created_at, id"
	deleteTeamQuery  = "DELETE FROM teams WHERE id=$1::uuid"
)

// CreateTeam inserts a team under a freshly generated id.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	team.ID = uuid.NewString()
	if _, err := p.db.Exec(ctx, insertTeamQuery, team.ID, team.Name); err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "team_id", team.ID, "team", team.Name)
	return &team, nil
}

// ListTeams returns all teams in creation order.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	return p.queryTeams(ctx, selectTeamsQuery)
}

// GetTeam fetches a team by id.
func (p *Postgres) GetTeam(ctx context.Context, id string) (*entities.Team, error) {
	teamID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var t entities.Team
	if err := p.db.QueryRow(ctx, selectTeamQuery, teamID).Scan(&t.ID, &t.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// GetTeamsByIDs returns the teams among ids that exist; unknown ids are skipped.
func (p *Postgres) GetTeamsByIDs(ctx context.Context, ids []string) ([]entities.Team, error) {
	if len(ids) == 0 {
		return []entities.Team{}, nil
	}
	teamIDs, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	return p.queryTeams(ctx, selectTeamsByIDs, teamIDs)
}

// DeleteTeam removes a team and reports whether a row was deleted.
// Contact references are left to RemoveTeamFromContacts.
func (p *Postgres) DeleteTeam(ctx context.Context, id string) (bool, error) {
	teamID, err := parseID(id)
	if err != nil {
		return false, err
	}

	tag, err := p.db.Exec(ctx, deleteTeamQuery, teamID)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	deleted := tag.RowsAffected() == 1
	p.log.Infow("team delete", "team_id", teamID, "deleted", deleted)
	return deleted, nil
}

func (p *Postgres) queryTeams(ctx context.Context, query string, args ...any) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}
	return teams, nil
}
