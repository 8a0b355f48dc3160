package paypal

import (
	"context"
	"net/http"
)

// ShowTrackingDetails returns tracking information for a transaction. The
// id combines transaction id and tracking number as
// "<transaction_id>-<tracking_number>".
func (c *Client) ShowTrackingDetails(ctx context.Context, trackingID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/shipping/trackers/"+trackingID, nil, nil, nil)
}

// UpdateTrackingDetails replaces tracking information for a transaction.
// PayPal answers 204 on success.
func (c *Client) UpdateTrackingDetails(ctx context.Context, trackingID string, tracker map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPut, "/v1/shipping/trackers/"+trackingID, nil, tracker, nil)
}

// AddTracking adds tracking information for a single transaction.
func (c *Client) AddTracking(ctx context.Context, tracker map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/shipping/trackers", nil, tracker, nil)
}

// AddBatchTracking adds tracking information for multiple transactions in
// one call.
func (c *Client) AddBatchTracking(ctx context.Context, trackers []map[string]any) (Result, error) {
	body := map[string]any{"trackers": trackers}
	return c.do(ctx, http.MethodPost, "/v1/shipping/trackers-batch", nil, body, nil)
}
