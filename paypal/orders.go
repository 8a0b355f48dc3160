package paypal

import (
	"context"
	"net/http"
)

// CreateOrder creates an order under /v2/checkout/orders. Amounts must be
// provided as decimal strings (e.g. "100.00") to avoid floating-point
// precision loss on the wire.
func (c *Client) CreateOrder(ctx context.Context, order map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/checkout/orders", nil, order, nil)
}

// ShowOrderDetails returns the details of an order.
func (c *Client) ShowOrderDetails(ctx context.Context, orderID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/checkout/orders/"+orderID, nil, nil, nil)
}

// UpdateOrder applies a JSON patch to an order. PayPal answers 204, so a
// successful update yields an empty result.
func (c *Client) UpdateOrder(ctx context.Context, orderID string, patch []map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPatch, "/v2/checkout/orders/"+orderID, nil, patch, nil)
}

// AuthorizePaymentOrder authorizes payment for an approved order.
func (c *Client) AuthorizePaymentOrder(ctx context.Context, orderID string, body map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/checkout/orders/"+orderID+"/authorize", nil, body, nil)
}

// CapturePaymentOrder captures payment for an approved order.
func (c *Client) CapturePaymentOrder(ctx context.Context, orderID string, body map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/checkout/orders/"+orderID+"/capture", nil, body, nil)
}
