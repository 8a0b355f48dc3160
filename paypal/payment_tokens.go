package paypal

import (
	"context"
	"net/http"
)

// CreatePaymentSetupToken vaults payment method details for later
// conversion into a payment token.
func (c *Client) CreatePaymentSetupToken(ctx context.Context, setup map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v3/vault/setup-tokens", nil, setup, nil)
}

// ShowPaymentSetupTokenDetails returns the details of a setup token.
func (c *Client) ShowPaymentSetupTokenDetails(ctx context.Context, tokenID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v3/vault/setup-tokens/"+tokenID, nil, nil, nil)
}

// CreatePaymentSourceToken converts a setup token into a vaulted payment
// token.
func (c *Client) CreatePaymentSourceToken(ctx context.Context, source map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v3/vault/payment-tokens", nil, source, nil)
}

// ShowPaymentSourceTokenDetails returns the details of a vaulted payment
// token.
func (c *Client) ShowPaymentSourceTokenDetails(ctx context.Context, tokenID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v3/vault/payment-tokens/"+tokenID, nil, nil, nil)
}

// ListPaymentSourceTokens lists the payment tokens vaulted for a customer.
func (c *Client) ListPaymentSourceTokens(ctx context.Context, customerID string, page, pageSize int, totals bool) (Result, error) {
	queryParams := listQuery(page, pageSize, totals)
	queryParams.Set("customer_id", customerID)

	return c.do(ctx, http.MethodGet, "/v3/vault/payment-tokens", queryParams, nil, nil)
}

// DeletePaymentSourceToken removes a vaulted payment token. PayPal answers
// 204 on success.
func (c *Client) DeletePaymentSourceToken(ctx context.Context, tokenID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v3/vault/payment-tokens/"+tokenID, nil, nil, nil)
}
