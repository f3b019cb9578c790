package mongodb

import (
	"context"
	"errors"
	"fmt"

	"contact-directory/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateTeam inserts a team; the id is assigned by the driver.
func (m *Mongo) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	doc := teamDoc{ID: primitive.NewObjectID(), Name: team.Name}
	if _, err := m.teams.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}

	created := doc.entity()
	m.log.Infow("team created", "team_id", created.ID, "team", created.Name)
	return &created, nil
}

// ListTeams returns all teams in natural order.
func (m *Mongo) ListTeams(ctx context.Context) ([]entities.Team, error) {
	return m.findTeams(ctx, bson.D{})
}

// GetTeam fetches a team by id.
func (m *Mongo) GetTeam(ctx context.Context, id string) (*entities.Team, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc teamDoc
	if err := m.teams.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	t := doc.entity()
	return &t, nil
}

// GetTeamsByIDs returns the teams among ids that exist; unknown ids are skipped.
func (m *Mongo) GetTeamsByIDs(ctx context.Context, ids []string) ([]entities.Team, error) {
	if len(ids) == 0 {
		return []entities.Team{}, nil
	}
	oids, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	return m.findTeams(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

// DeleteTeam removes a team and reports whether a document was deleted.
// Contact references are left to RemoveTeamFromContacts.
func (m *Mongo) DeleteTeam(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	res, err := m.teams.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	deleted := res.DeletedCount == 1
	m.log.Infow("team delete", "team_id", id, "deleted", deleted)
	return deleted, nil
}

func (m *Mongo) findTeams(ctx context.Context, filter any) ([]entities.Team, error) {
	cur, err := m.teams.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find teams: %w", err)
	}

	var docs []teamDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}

	teams := make([]entities.Team, 0, len(docs))
	for _, d := range docs {
		teams = append(teams, d.entity())
	}
	return teams, nil
}
