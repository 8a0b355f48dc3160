package paypal

import (
	"context"
	"net/http"
)

// ListWebExperienceProfiles lists the web experience profiles of the
// account.
func (c *Client) ListWebExperienceProfiles(ctx context.Context) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/payment-experience/web-profiles", nil, nil, nil)
}

// CreateWebExperienceProfile creates a web experience profile controlling
// the payer checkout appearance.
func (c *Client) CreateWebExperienceProfile(ctx context.Context, profile map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/payment-experience/web-profiles", nil, profile, nil)
}

// ShowWebExperienceProfileDetails returns the details of a web experience
// profile.
func (c *Client) ShowWebExperienceProfileDetails(ctx context.Context, profileID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/payment-experience/web-profiles/"+profileID, nil, nil, nil)
}

// UpdateWebExperienceProfile fully replaces a web experience profile.
// PayPal answers 204 on success.
func (c *Client) UpdateWebExperienceProfile(ctx context.Context, profileID string, profile map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPut, "/v1/payment-experience/web-profiles/"+profileID, nil, profile, nil)
}

// PatchWebExperienceProfile partially updates a web experience profile.
// PayPal answers 204 on success.
func (c *Client) PatchWebExperienceProfile(ctx context.Context, profileID string, patch []map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPatch, "/v1/payment-experience/web-profiles/"+profileID, nil, patch, nil)
}

// DeleteWebExperienceProfile removes a web experience profile. PayPal
// answers 204 on success.
func (c *Client) DeleteWebExperienceProfile(ctx context.Context, profileID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v1/payment-experience/web-profiles/"+profileID, nil, nil, nil)
}
