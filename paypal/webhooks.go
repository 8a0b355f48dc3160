package paypal

import (
	"context"
	"net/http"
)

// CreateWebhook subscribes a listener URL to the given event types.
func (c *Client) CreateWebhook(ctx context.Context, listenerURL string, eventTypes []string) (Result, error) {
	events := make([]map[string]any, 0, len(eventTypes))
	for _, name := range eventTypes {
		events = append(events, map[string]any{"name": name})
	}

	body := map[string]any{
		"url":         listenerURL,
		"event_types": events,
	}
	return c.do(ctx, http.MethodPost, "/v1/notifications/webhooks", nil, body, nil)
}

// ListWebhooks lists the webhooks registered for the app.
func (c *Client) ListWebhooks(ctx context.Context) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/notifications/webhooks", nil, nil, nil)
}

// ShowWebhookDetails returns the details of a webhook.
func (c *Client) ShowWebhookDetails(ctx context.Context, webhookID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/notifications/webhooks/"+webhookID, nil, nil, nil)
}

// UpdateWebhook applies a JSON patch to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, patch []map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPatch, "/v1/notifications/webhooks/"+webhookID, nil, patch, nil)
}

// DeleteWebhook removes a webhook. PayPal answers 204 on success.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v1/notifications/webhooks/"+webhookID, nil, nil, nil)
}

// ListEventTypes lists all event types webhooks can subscribe to.
func (c *Client) ListEventTypes(ctx context.Context) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/notifications/webhooks-event-types", nil, nil, nil)
}

// ListWebhookEvents lists event notifications delivered to the app.
func (c *Client) ListWebhookEvents(ctx context.Context, page, pageSize int, totals bool) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/notifications/webhooks-events", listQuery(page, pageSize, totals), nil, nil)
}

// ShowWebhookEventDetails returns the details of a delivered event
// notification.
func (c *Client) ShowWebhookEventDetails(ctx context.Context, eventID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/notifications/webhooks-events/"+eventID, nil, nil, nil)
}

// ResendWebhookEvent resends an event notification to the given webhooks.
func (c *Client) ResendWebhookEvent(ctx context.Context, eventID string, webhookIDs []string) (Result, error) {
	body := map[string]any{"webhook_ids": webhookIDs}
	return c.do(ctx, http.MethodPost, "/v1/notifications/webhooks-events/"+eventID+"/resend", nil, body, nil)
}

// VerifyWebhookSignature asks PayPal to verify an incoming event
// notification. Verification is delegated to PayPal's own endpoint; no
// local cryptographic check is performed, the server stays the verifier
// of record. The payload must include the transmission headers, the
// webhook id and the raw event body.
func (c *Client) VerifyWebhookSignature(ctx context.Context, payload map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/notifications/verify-webhook-signature", nil, payload, nil)
}
