package paypal

import (
	"context"
	"net/http"
)

// CreateBatchPayout creates a batch payout to one or more recipients.
func (c *Client) CreateBatchPayout(ctx context.Context, payout map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/payments/payouts", nil, payout, nil)
}

// ShowBatchPayoutDetails returns the status of a batch payout and its
// items.
func (c *Client) ShowBatchPayoutDetails(ctx context.Context, batchID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/payments/payouts/"+batchID, nil, nil, nil)
}

// ShowPayoutItemDetails returns the details of a single payout item.
func (c *Client) ShowPayoutItemDetails(ctx context.Context, itemID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/payments/payouts-item/"+itemID, nil, nil, nil)
}

// CancelUnclaimedPayoutItem cancels a payout item the recipient has not
// claimed yet.
func (c *Client) CancelUnclaimedPayoutItem(ctx context.Context, itemID string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/payments/payouts-item/"+itemID+"/cancel", nil, nil, nil)
}

// CreateReferencedBatchPayout creates a referenced batch payout. The
// partner attribution header is mandatory on this endpoint.
func (c *Client) CreateReferencedBatchPayout(ctx context.Context, attributionID string, payout map[string]any) (Result, error) {
	headers := map[string]string{"PayPal-Partner-Attribution-Id": attributionID}
	return c.do(ctx, http.MethodPost, "/v1/payments/referenced-payouts", nil, payout, headers)
}

// ListItemsInReferencedBatchPayout lists the items of a referenced batch
// payout.
func (c *Client) ListItemsInReferencedBatchPayout(ctx context.Context, batchID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/payments/referenced-payouts/"+batchID, nil, nil, nil)
}

// CreateReferencedBatchPayoutItem creates a payout item against an existing
// reference.
func (c *Client) CreateReferencedBatchPayoutItem(ctx context.Context, attributionID string, item map[string]any) (Result, error) {
	headers := map[string]string{"PayPal-Partner-Attribution-Id": attributionID}
	return c.do(ctx, http.MethodPost, "/v1/payments/referenced-payouts-items", nil, item, headers)
}

// ShowReferencedPayoutItemDetails returns the details of a referenced
// payout item.
func (c *Client) ShowReferencedPayoutItemDetails(ctx context.Context, itemID, attributionID string) (Result, error) {
	headers := map[string]string{"PayPal-Partner-Attribution-Id": attributionID}
	return c.do(ctx, http.MethodGet, "/v1/payments/referenced-payouts-items/"+itemID, nil, nil, headers)
}
