package mongodb

import (
	"context"
	"errors"
	"fmt"

	"contact-directory/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateContact inserts a contact. The unique phone index turns a racing
// duplicate into entities.ErrContactExists.
func (m *Mongo) CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	teamIDs, err := parseIDs(contact.TeamIDs)
	if err != nil {
		return nil, err
	}

	doc := contactDoc{
		ID:       primitive.NewObjectID(),
		Name:     contact.Name,
		Phone:    contact.Phone,
		Timezone: contact.Timezone,
		TeamIDs:  teamIDs,
	}
	if _, err := m.contacts.InsertOne(ctx, doc); err != nil {
		m.log.Errorw("failed to insert contact", "error", err)
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrContactExists
		}
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	created := doc.entity()
	m.log.Infow("contact created", "contact_id", created.ID, "teams", len(teamIDs))
	return &created, nil
}

// ListContacts returns all contacts in natural order.
func (m *Mongo) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	cur, err := m.contacts.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	var docs []contactDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	contacts := make([]entities.Contact, 0, len(docs))
	for _, d := range docs {
		contacts = append(contacts, d.entity())
	}
	return contacts, nil
}

// GetContact fetches a contact by id.
func (m *Mongo) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return m.findContact(ctx, bson.M{"_id": oid})
}

// GetContactByPhone fetches the contact owning phone.
func (m *Mongo) GetContactByPhone(ctx context.Context, phone string) (*entities.Contact, error) {
	return m.findContact(ctx, bson.M{"phone": phone})
}

// UpdateContact applies the non-nil fields of update and returns the new state.
func (m *Mongo) UpdateContact(ctx context.Context, id string, update entities.ContactUpdate) (*entities.Contact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if len(set) == 0 {
		return m.findContact(ctx, bson.M{"_id": oid})
	}

	var doc contactDoc
	err = m.contacts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, entities.ErrContactNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, entities.ErrContactExists
		}
		m.log.Errorw("failed to update contact", "error", err, "contact_id", id)
		return nil, fmt.Errorf("update contact: %w", err)
	}

	m.log.Infow("contact updated", "contact_id", id)
	c := doc.entity()
	return &c, nil
}

// DeleteContact removes a contact and reports whether exactly one document went away.
func (m *Mongo) DeleteContact(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	res, err := m.contacts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	return res.DeletedCount == 1, nil
}

// RemoveTeamFromContacts pulls teamID from every contact referencing it and
// returns the number of contacts changed.
func (m *Mongo) RemoveTeamFromContacts(ctx context.Context, teamID string) (int64, error) {
	oid, err := parseID(teamID)
	if err != nil {
		return 0, err
	}

	res, err := m.contacts.UpdateMany(ctx,
		bson.M{"team_ids": oid},
		bson.M{"$pull": bson.M{"team_ids": oid}},
	)
	if err != nil {
		return 0, fmt.Errorf("remove team from contacts: %w", err)
	}
	if res.ModifiedCount > 0 {
		m.log.Infow("team references removed", "team_id", teamID, "contacts", res.ModifiedCount)
	}
	return res.ModifiedCount, nil
}

func (m *Mongo) findContact(ctx context.Context, filter bson.M) (*entities.Contact, error) {
	var doc contactDoc
	if err := m.contacts.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	c := doc.entity()
	return &c, nil
}
