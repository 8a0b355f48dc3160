package paypal

import (
	"context"
	"net/http"
	"net/url"
)

// ShowProfileInfo returns profile information about the account the
// current token was issued for.
func (c *Client) ShowProfileInfo(ctx context.Context) (Result, error) {
	queryParams := url.Values{}
	queryParams.Set("schema", "paypalv1.1")

	return c.do(ctx, http.MethodGet, "/v1/identity/oauth2/userinfo", queryParams, nil, nil)
}

// GetClientToken returns a short-lived client token for use in hosted
// payment fields.
func (c *Client) GetClientToken(ctx context.Context) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/identity/generate-token", nil, nil, nil)
}

// ListUsers lists the users managed by the account.
func (c *Client) ListUsers(ctx context.Context, filter string) (Result, error) {
	queryParams := url.Values{}
	if filter != "" {
		queryParams.Set("filter", filter)
	}

	return c.do(ctx, http.MethodGet, "/v2/scim/Users", queryParams, nil, nil)
}

// ShowUserDetails returns the details of a managed user.
func (c *Client) ShowUserDetails(ctx context.Context, userID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/scim/Users/"+userID, nil, nil, nil)
}

// DeleteUser removes a managed user. PayPal answers 204 on success.
func (c *Client) DeleteUser(ctx context.Context, userID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v2/scim/Users/"+userID, nil, nil, nil)
}

// CreateMerchantApplication registers a merchant application and obtains
// credentials for it.
func (c *Client) CreateMerchantApplication(ctx context.Context, application map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/identity/applications", nil, application, nil)
}

// SetAccountProperties updates account settings.
func (c *Client) SetAccountProperties(ctx context.Context, properties map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/identity/account-settings", nil, properties, nil)
}

// DisableAccountProperties deactivates account settings. PayPal answers
// 204 on success.
func (c *Client) DisableAccountProperties(ctx context.Context) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/identity/account-settings/deactivate", nil, nil, nil)
}
