package gateway

import (
	"context"
	"net/url"

	"contact-directory/internal/entities"
)

const providerPhone = "validatephone"

type validatePhoneResponse struct {
	IsValid             bool     `json:"is_valid"`
	Country             string   `json:"country"`
	FormatInternational string   `json:"format_international"`
	Timezones           []string `json:"timezones"`
}

// ValidatePhone asks the validator whether phone is a real number and which
// time zones it belongs to.
func (c *Client) ValidatePhone(ctx context.Context, phone string) (entities.PhoneValidation, error) {
	var resp validatePhoneResponse
	if err := c.getJSON(ctx, providerPhone, "/v1/validatephone", url.Values{"number": {phone}}, &resp); err != nil {
		return entities.PhoneValidation{}, err
	}

	c.log.Debugw("phone validated",
		"valid", resp.IsValid,
		"country", resp.Country,
		"format", resp.FormatInternational,
		"timezones", len(resp.Timezones),
	)
	return entities.PhoneValidation{
		Valid:     resp.IsValid,
		Country:   resp.Country,
		Timezones: resp.Timezones,
	}, nil
}
