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
	contactColumns = "id::text, name, phone, timezone, team_ids::text[]"

	insertContactQuery = `
INSERT INTO contacts(id, name, phone, timezone, team_ids)
VALUES ($1::uuid, $2, $3, $4, $5::uuid[])`
	selectContactsQuery       = "SELECT " + contactColumns + " FROM contacts ORDER BY created_at, id"
	selectContactQuery        = "SELECT " + contactColumns + " FROM contacts WHERE id=$1::uuid"
	selectContactByPhoneQuery = "SELECT " + contactColumns + " FROM contacts WHERE phone=$1"
	updateContactQuery        = `
UPDATE contacts
SET name = COALESCE($2, name), phone = COALESCE($3, phone)
WHERE id=$1::uuid
RETURNING ` + contactColumns
	deleteContactQuery = "DELETE FROM contacts WHERE id=$1::uuid"
	pullTeamQuery      = `
UPDATE contacts
SET team_ids = array_remove(team_ids, $1::uuid)
WHERE $1::uuid = ANY(team_ids)`
)

// CreateContact inserts a contact under a freshly generated id.
// A phone collision with a concurrent insert maps to entities.ErrContactExists.
func (p *Postgres) CreateContact(ctx context.Context, contact entities.Contact) (*entities.Contact, error) {
	teamIDs, err := parseIDs(contact.TeamIDs)
	if err != nil {
		return nil, err
	}

	contact.ID = uuid.NewString()
	contact.TeamIDs = teamIDs
	if _, err := p.db.Exec(ctx, insertContactQuery, contact.ID, contact.Name, contact.Phone, contact.Timezone, teamIDs); err != nil {
		p.log.Errorw("failed to insert contact", "error", err)
		if isUniqueViolation(err) {
			return nil, entities.ErrContactExists
		}
		return nil, fmt.Errorf("insert contact: %w", err)
	}

	p.log.Infow("contact created", "contact_id", contact.ID, "teams", len(teamIDs))
	return &contact, nil
}

// ListContacts returns all contacts in creation order.
func (p *Postgres) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	rows, err := p.db.Query(ctx, selectContactsQuery)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]entities.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

// GetContact fetches a contact by id.
func (p *Postgres) GetContact(ctx context.Context, id string) (*entities.Contact, error) {
	contactID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return p.getContact(ctx, selectContactQuery, contactID)
}

// GetContactByPhone fetches the contact owning phone.
func (p *Postgres) GetContactByPhone(ctx context.Context, phone string) (*entities.Contact, error) {
	return p.getContact(ctx, selectContactByPhoneQuery, phone)
}

// UpdateContact applies the non-nil fields of update. Timezone and team
// references are never touched here.
func (p *Postgres) UpdateContact(ctx context.Context, id string, update entities.ContactUpdate) (*entities.Contact, error) {
	contactID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	c, err := scanContact(p.db.QueryRow(ctx, updateContactQuery, contactID, update.Name, update.Phone))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, entities.ErrContactNotFound
		case isUniqueViolation(err):
			return nil, entities.ErrContactExists
		}
		p.log.Errorw("failed to update contact", "error", err, "contact_id", contactID)
		return nil, fmt.Errorf("update contact: %w", err)
	}

	p.log.Infow("contact updated", "contact_id", contactID)
	return c, nil
}

// DeleteContact removes a contact and reports whether exactly one row went away.
func (p *Postgres) DeleteContact(ctx context.Context, id string) (bool, error) {
	contactID, err := parseID(id)
	if err != nil {
		return false, err
	}

	tag, err := p.db.Exec(ctx, deleteContactQuery, contactID)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveTeamFromContacts drops teamID from every contact referencing it and
// returns the number of contacts changed.
func (p *Postgres) RemoveTeamFromContacts(ctx context.Context, teamID string) (int64, error) {
	id, err := parseID(teamID)
	if err != nil {
		return 0, err
	}

	tag, err := p.db.Exec(ctx, pullTeamQuery, id)
	if err != nil {
		return 0, fmt.Errorf("remove team from contacts: %w", err)
	}
	if n := tag.RowsAffected(); n > 0 {
		p.log.Infow("team references removed", "team_id", id, "contacts", n)
	}
	return tag.RowsAffected(), nil
}

func (p *Postgres) getContact(ctx context.Context, query string, arg any) (*entities.Contact, error) {
	c, err := scanContact(p.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func scanContact(row pgx.Row) (*entities.Contact, error) {
	var c entities.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Timezone, &c.TeamIDs); err != nil {
		return nil, err
	}
	if c.TeamIDs == nil {
		c.TeamIDs = []string{}
	}
	return &c, nil
}
