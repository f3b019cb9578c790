package mongodb

import (
	"fmt"

	"contact-directory/internal/entities"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type teamDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d teamDoc) entity() entities.Team {
	return entities.Team{ID: d.ID.Hex(), Name: d.Name}
}

type contactDoc struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty"`
	Name     string               `bson:"name"`
	Phone    string               `bson:"phone"`
	Timezone string               `bson:"timezone"`
	TeamIDs  []primitive.ObjectID `bson:"team_ids"`
}

func (d contactDoc) entity() entities.Contact {
	teamIDs := make([]string, 0, len(d.TeamIDs))
	for _, id := range d.TeamIDs {
		teamIDs = append(teamIDs, id.Hex())
	}
	return entities.Contact{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Phone:    d.Phone,
		Timezone: d.Timezone,
		TeamIDs:  teamIDs,
	}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", entities.ErrInvalidID, id)
	}
	return oid, nil
}

func parseIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := parseID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}
