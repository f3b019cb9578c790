// Package entities contains core business entities.
package entities

// Contact is a stored directory record.
// Timezone is derived once from the phone validator and never rewritten.
type Contact struct {
	ID       string
	Name     string
	Phone    string
	Timezone string
	TeamIDs  []string
}

// HasTeam reports whether the contact references the given team.
func (c Contact) HasTeam(teamID string) bool {
	for _, id := range c.TeamIDs {
		if id == teamID {
			return true
		}
	}
	return false
}

// ContactView is a contact with its read-time fields resolved.
type ContactView struct {
	Contact
	Time  string
	Teams []Team
}

// ContactUpdate carries optional fields of an update request.
// A nil field is left untouched.
type ContactUpdate struct {
	Name  *string
	Phone *string
}

// Empty reports whether the update changes nothing.
func (u ContactUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil
}
