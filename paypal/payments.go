package paypal

import (
	"context"
	"net/http"
)

// ShowAuthorizedPaymentDetails returns the details of an authorized payment.
func (c *Client) ShowAuthorizedPaymentDetails(ctx context.Context, authorizationID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/payments/authorizations/"+authorizationID, nil, nil, nil)
}

// CaptureAuthorizedPayment captures an authorized payment, in full or in
// part depending on the supplied body.
func (c *Client) CaptureAuthorizedPayment(ctx context.Context, authorizationID string, body map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/payments/authorizations/"+authorizationID+"/capture", nil, body, nil)
}

// ReauthorizeAuthorizedPayment reauthorizes an authorized payment after the
// original honor period has lapsed.
func (c *Client) ReauthorizeAuthorizedPayment(ctx context.Context, authorizationID string, body map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/payments/authorizations/"+authorizationID+"/reauthorize", nil, body, nil)
}

// VoidAuthorizedPayment voids an authorized payment. PayPal answers 204 on
// success.
func (c *Client) VoidAuthorizedPayment(ctx context.Context, authorizationID string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/payments/authorizations/"+authorizationID+"/void", nil, nil, nil)
}

// ShowCapturedPaymentDetails returns the details of a captured payment.
func (c *Client) ShowCapturedPaymentDetails(ctx context.Context, captureID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/payments/captures/"+captureID, nil, nil, nil)
}

// RefundCapturedPayment refunds a captured payment. Partial refunds pass an
// amount with a decimal-string value.
func (c *Client) RefundCapturedPayment(ctx context.Context, captureID string, body map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/payments/captures/"+captureID+"/refund", nil, body, nil)
}

// ShowRefundDetails returns the details of a refund.
func (c *Client) ShowRefundDetails(ctx context.Context, refundID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/payments/refunds/"+refundID, nil, nil, nil)
}
