package gateway

import (
	"context"
	"net/url"
)

const providerWorldTime = "worldtime"

type worldTimeResponse struct {
	Datetime string `json:"datetime"`
}

// CurrentTime returns the current datetime string for an IANA time zone.
func (c *Client) CurrentTime(ctx context.Context, timezone string) (string, error) {
	var resp worldTimeResponse
	if err := c.getJSON(ctx, providerWorldTime, "/v1/worldtime", url.Values{"timezone": {timezone}}, &resp); err != nil {
		return "", err
	}
	if resp.Datetime == "" {
		return "", &Error{Provider: providerWorldTime, Message: "empty datetime"}
	}
	return resp.Datetime, nil
}
