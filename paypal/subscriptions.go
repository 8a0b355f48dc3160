package paypal

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// CreateSubscription creates a subscription to a billing plan.
func (c *Client) CreateSubscription(ctx context.Context, subscription map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/subscriptions", nil, subscription, nil)
}

// ShowSubscriptionDetails returns the details of a subscription.
func (c *Client) ShowSubscriptionDetails(ctx context.Context, subscriptionID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/billing/subscriptions/"+subscriptionID, nil, nil, nil)
}

// UpdateSubscription applies a JSON patch to a subscription. PayPal answers
// 204 on success.
func (c *Client) UpdateSubscription(ctx context.Context, subscriptionID string, patch []map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPatch, "/v1/billing/subscriptions/"+subscriptionID, nil, patch, nil)
}

// ActivateSubscription activates a suspended subscription.
func (c *Client) ActivateSubscription(ctx context.Context, subscriptionID, reason string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/subscriptions/"+subscriptionID+"/activate", nil,
		map[string]any{"reason": reason}, nil)
}

// CancelSubscription cancels a subscription. PayPal answers 204 on success.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID, reason string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/subscriptions/"+subscriptionID+"/cancel", nil,
		map[string]any{"reason": reason}, nil)
}

// SuspendSubscription suspends an active subscription.
func (c *Client) SuspendSubscription(ctx context.Context, subscriptionID, reason string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/subscriptions/"+subscriptionID+"/suspend", nil,
		map[string]any{"reason": reason}, nil)
}

// CaptureSubscriptionPayment captures an outstanding amount on a
// subscription. The amount is a decimal string in the client currency.
func (c *Client) CaptureSubscriptionPayment(ctx context.Context, subscriptionID, note, amount string) (Result, error) {
	body := map[string]any{
		"note":         note,
		"capture_type": "OUTSTANDING_BALANCE",
		"amount": map[string]any{
			"currency_code": c.Currency(),
			"value":         amount,
		},
	}
	return c.do(ctx, http.MethodPost, "/v1/billing/subscriptions/"+subscriptionID+"/capture", nil, body, nil)
}

// ReviseSubscription updates the quantity or plan of a subscription.
func (c *Client) ReviseSubscription(ctx context.Context, subscriptionID string, revision map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/subscriptions/"+subscriptionID+"/revise", nil, revision, nil)
}

// ListSubscriptionTransactions lists transactions of a subscription within
// the given time window.
func (c *Client) ListSubscriptionTransactions(ctx context.Context, subscriptionID string, start, end time.Time) (Result, error) {
	queryParams := url.Values{}
	queryParams.Set("start_time", start.Format(time.RFC3339))
	queryParams.Set("end_time", end.Format(time.RFC3339))

	return c.do(ctx, http.MethodGet, "/v1/billing/subscriptions/"+subscriptionID+"/transactions", queryParams, nil, nil)
}
