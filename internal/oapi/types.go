// Package oapi holds the JSON transport models and route table of the HTTP API.
package oapi

// ErrorResponseErrorCode is a machine-readable error kind.
type ErrorResponseErrorCode string

// Defines values for ErrorResponseErrorCode.
const (
	VALIDATIONERROR ErrorResponseErrorCode = "VALIDATION_ERROR"
	INVALIDID       ErrorResponseErrorCode = "INVALID_ID"
	NOTFOUND        ErrorResponseErrorCode = "NOT_FOUND"
	CONTACTEXISTS   ErrorResponseErrorCode = "CONTACT_EXISTS"
	UPSTREAMERROR   ErrorResponseErrorCode = "UPSTREAM_ERROR"
	INTERNAL        ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// Team defines model for Team.
type Team struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Contact defines model for Contact.
type Contact struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
	Time     string `json:"time"`
	Teams    []Team `json:"teams"`
}

// NewContact defines model for NewContact.
type NewContact struct {
	Name  string   `json:"name"`
	Phone string   `json:"phone"`
	Teams []string `json:"teams,omitempty"`
}

// ContactPatch defines model for ContactPatch.
type ContactPatch struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// NewTeam defines model for NewTeam.
type NewTeam struct {
	Name string `json:"name"`
}

// DeleteResult reports whether a record was removed.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// ContactEnvelope wraps a single contact.
type ContactEnvelope struct {
	Contact Contact `json:"contact"`
}

// ContactList wraps a list of contacts.
type ContactList struct {
	Contacts []Contact `json:"contacts"`
}

// TeamEnvelope wraps a single team.
type TeamEnvelope struct {
	Team Team `json:"team"`
}

// TeamList wraps a list of teams.
type TeamList struct {
	Teams []Team `json:"teams"`
}

// PostContactsJSONRequestBody defines body for PostContacts for application/json ContentType.
type PostContactsJSONRequestBody = NewContact

// PatchContactsIdJSONRequestBody defines body for PatchContactsId for application/json ContentType.
type PatchContactsIdJSONRequestBody = ContactPatch

// PostTeamsJSONRequestBody defines body for PostTeams for application/json ContentType.
type PostTeamsJSONRequestBody = NewTeam
