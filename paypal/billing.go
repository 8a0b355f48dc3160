package paypal

import (
	"context"
	"net/http"
)

// CreatePlan creates a billing plan.
func (c *Client) CreatePlan(ctx context.Context, plan map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/plans", nil, plan, nil)
}

// ListPlans lists billing plans. Zero page and pageSize fall back to the
// pagination defaults; totals toggles result counts in the response.
func (c *Client) ListPlans(ctx context.Context, page, pageSize int, totals bool) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/billing/plans", listQuery(page, pageSize, totals), nil, nil)
}

// ShowPlanDetails returns the details of a billing plan.
func (c *Client) ShowPlanDetails(ctx context.Context, planID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/billing/plans/"+planID, nil, nil, nil)
}

// UpdatePlan applies a JSON patch to a billing plan.
func (c *Client) UpdatePlan(ctx context.Context, planID string, patch []map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPatch, "/v1/billing/plans/"+planID, nil, patch, nil)
}

// ActivatePlan activates a billing plan. PayPal answers 204 on success.
func (c *Client) ActivatePlan(ctx context.Context, planID string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/plans/"+planID+"/activate", nil, nil, nil)
}

// DeactivatePlan deactivates a billing plan. PayPal answers 204 on success.
func (c *Client) DeactivatePlan(ctx context.Context, planID string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/plans/"+planID+"/deactivate", nil, nil, nil)
}

// UpdatePlanPricing updates pricing schemes of a billing plan.
func (c *Client) UpdatePlanPricing(ctx context.Context, planID string, pricing map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/billing/plans/"+planID+"/update-pricing-schemes", nil, pricing, nil)
}
