// Package entities contains core business entities.
package entities

// PhoneValidation is the validator's verdict for a phone number.
type PhoneValidation struct {
	Valid     bool
	Country   string
	Timezones []string
}

// PrimaryTimezone returns the first candidate time zone.
func (p PhoneValidation) PrimaryTimezone() (string, bool) {
	if len(p.Timezones) == 0 || p.Timezones[0] == "" {
		return "", false
	}
	return p.Timezones[0], true
}
