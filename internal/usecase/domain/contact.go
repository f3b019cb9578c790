// Package domain contains application Usecases orchestrating domain logic by contact.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact-directory/internal/entities"

	"golang.org/x/sync/errgroup"
)

// ListContacts returns every contact with its current time and teams resolved.
func (u *Usecase) ListContacts(ctx context.Context) ([]entities.ContactView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	contacts, err := u.repo.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	return u.resolveAll(ctx, contacts)
}

// Contact returns a contact by id with derived fields resolved.
func (u *Usecase) Contact(ctx context.Context, id string) (*entities.ContactView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	c, err := u.repo.GetContact(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	now, err := u.upstream.CurrentTime(ctx, c.Timezone)
	if err != nil {
		return nil, err
	}
	return u.view(ctx, *c, now)
}

// CreateContact validates the phone upstream and stores a new contact whose
// time zone is the validator's first candidate.
func (u *Usecase) CreateContact(ctx context.Context, name, phone string, teamIDs []string) (*entities.ContactView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" || phone == "" {
		u.log.Errorw("failed to create contact: missing fields", "has_name", name != "", "has_phone", phone != "")
		return nil, fmt.Errorf("%w: name and phone are required", entities.ErrValidation)
	}

	if err := u.ensurePhoneFree(ctx, phone, ""); err != nil {
		return nil, err
	}

	teamIDs, err := u.checkTeams(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	verdict, err := u.upstream.ValidatePhone(ctx, phone)
	if err != nil {
		u.log.Errorw("phone validation failed", "error", err)
		return nil, err
	}
	if !verdict.Valid {
		return nil, entities.ErrInvalidPhone
	}
	timezone, ok := verdict.PrimaryTimezone()
	if !ok {
		return nil, fmt.Errorf("%w: validator returned no time zones", entities.ErrUpstream)
	}

	// Resolve the display time before writing so an upstream failure leaves nothing behind.
	now, err := u.upstream.CurrentTime(ctx, timezone)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.CreateContact(ctx, entities.Contact{
		Name:     name,
		Phone:    phone,
		Timezone: timezone,
		TeamIDs:  teamIDs,
	})
	if err != nil {
		return nil, err
	}

	u.metrics.IncContactsCreated()
	u.log.Infow("contact create", "contact_id", created.ID, "timezone", timezone)
	return u.view(ctx, *created, now)
}

// UpdateContact renames and/or re-numbers the contact identified by id.
// The time zone fixed at creation is kept.
func (u *Usecase) UpdateContact(ctx context.Context, id string, update entities.ContactUpdate) (*entities.ContactView, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if update.Empty() {
		return nil, fmt.Errorf("%w: name or phone must be provided", entities.ErrValidation)
	}
	update, err := trimUpdate(update)
	if err != nil {
		return nil, err
	}

	current, err := u.repo.GetContact(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	if update.Phone != nil && *update.Phone != current.Phone {
		if err := u.ensurePhoneFree(ctx, *update.Phone, current.ID); err != nil {
			return nil, err
		}
	}

	now, err := u.upstream.CurrentTime(ctx, current.Timezone)
	if err != nil {
		return nil, err
	}

	updated, err := u.repo.UpdateContact(ctx, current.ID, update)
	if err != nil {
		return nil, err
	}

	u.log.Infow("contact update", "contact_id", updated.ID, "name", update.Name != nil, "phone", update.Phone != nil)
	return u.view(ctx, *updated, now)
}

// DeleteContact deletes a contact and reports whether it existed.
func (u *Usecase) DeleteContact(ctx context.Context, id string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteContact(ctx, strings.TrimSpace(id))
}

// ensurePhoneFree fails with ErrContactExists when phone belongs to a contact
// other than ownerID.
func (u *Usecase) ensurePhoneFree(ctx context.Context, phone, ownerID string) error {
	existing, err := u.repo.GetContactByPhone(ctx, phone)
	switch {
	case errors.Is(err, entities.ErrContactNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != ownerID:
		return entities.ErrContactExists
	}
	return nil
}

// checkTeams collapses duplicates and rejects ids that name no team.
func (u *Usecase) checkTeams(ctx context.Context, teamIDs []string) ([]string, error) {
	ids := uniqueIDs(teamIDs)
	if len(ids) == 0 {
		return ids, nil
	}

	teams, err := u.repo.GetTeamsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(teams) == len(ids) {
		return ids, nil
	}

	known := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		known[t.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("%w: unknown team %s", entities.ErrValidation, id)
		}
	}
	return ids, nil
}

// view joins a contact with its surviving teams; stale references are dropped.
func (u *Usecase) view(ctx context.Context, c entities.Contact, now string) (*entities.ContactView, error) {
	teams, err := u.repo.GetTeamsByIDs(ctx, c.TeamIDs)
	if err != nil {
		return nil, err
	}
	return &entities.ContactView{Contact: c, Time: now, Teams: teams}, nil
}

// resolveAll fetches teams once for the whole page and current times in parallel.
func (u *Usecase) resolveAll(ctx context.Context, contacts []entities.Contact) ([]entities.ContactView, error) {
	views := make([]entities.ContactView, len(contacts))
	if len(contacts) == 0 {
		return views, nil
	}

	var refs []string
	for _, c := range contacts {
		refs = append(refs, c.TeamIDs...)
	}
	teams, err := u.repo.GetTeamsByIDs(ctx, uniqueIDs(refs))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i, c := range contacts {
		i, c := i, c
		views[i] = entities.ContactView{Contact: c, Teams: joinTeams(c.TeamIDs, byID)}
		g.Go(func() error {
			now, err := u.upstream.CurrentTime(gctx, c.Timezone)
			if err != nil {
				return err
			}
			views[i].Time = now
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		u.log.Errorw("failed to resolve contact times", "contacts", len(contacts), "error", err)
		return nil, err
	}
	return views, nil
}

func joinTeams(ids []string, byID map[string]entities.Team) []entities.Team {
	teams := make([]entities.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			teams = append(teams, t)
		}
	}
	return teams
}

// uniqueIDs trims and lower-cases ids (both backends emit lower-case hex) and
// drops repeats, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func trimUpdate(update entities.ContactUpdate) (entities.ContactUpdate, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return update, fmt.Errorf("%w: name must not be empty", entities.ErrValidation)
		}
		update.Name = &name
	}
	if update.Phone != nil {
		phone := strings.TrimSpace(*update.Phone)
		if phone == "" {
			return update, fmt.Errorf("%w: phone must not be empty", entities.ErrValidation)
		}
		update.Phone = &phone
	}
	return update, nil
}
