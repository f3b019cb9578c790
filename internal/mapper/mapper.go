// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"contact-directory/internal/entities"
	oapi "contact-directory/internal/oapi"
)

// ToOAPITeam maps entities.Team to transport model.
func ToOAPITeam(team entities.Team) oapi.Team {
	return oapi.Team{
		Id:   team.ID,
		Name: team.Name,
	}
}

// ToOAPITeamList maps a slice of entities.Team to transport slice.
func ToOAPITeamList(list []entities.Team) []oapi.Team {
	res := make([]oapi.Team, 0, len(list))
	for _, t := range list {
		res = append(res, ToOAPITeam(t))
	}
	return res
}

// ToOAPIContact maps a resolved contact to transport model.
func ToOAPIContact(view entities.ContactView) oapi.Contact {
	return oapi.Contact{
		Id:       view.ID,
		Name:     view.Name,
		Phone:    view.Phone,
		Timezone: view.Timezone,
		Time:     view.Time,
		Teams:    ToOAPITeamList(view.Teams),
	}
}

// ToOAPIContactList maps a slice of resolved contacts to transport slice.
func ToOAPIContactList(list []entities.ContactView) []oapi.Contact {
	res := make([]oapi.Contact, 0, len(list))
	for _, v := range list {
		res = append(res, ToOAPIContact(v))
	}
	return res
}

// FromOAPIContactPatch builds an entities.ContactUpdate from transport DTO.
func FromOAPIContactPatch(src oapi.ContactPatch) entities.ContactUpdate {
	return entities.ContactUpdate{
		Name:  src.Name,
		Phone: src.Phone,
	}
}
