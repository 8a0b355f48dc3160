package paypal

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateInvoiceTemplate creates a reusable invoice template.
func (c *Client) CreateInvoiceTemplate(ctx context.Context, template map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/invoicing/templates", nil, template, nil)
}

// ListInvoiceTemplates lists invoice templates.
func (c *Client) ListInvoiceTemplates(ctx context.Context, page, pageSize int) (Result, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	queryParams := url.Values{}
	queryParams.Set("page", strconv.Itoa(page))
	queryParams.Set("page_size", strconv.Itoa(pageSize))

	return c.do(ctx, http.MethodGet, "/v2/invoicing/templates", queryParams, nil, nil)
}

// ShowInvoiceTemplateDetails returns the details of an invoice template.
func (c *Client) ShowInvoiceTemplateDetails(ctx context.Context, templateID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/invoicing/templates/"+templateID, nil, nil, nil)
}

// UpdateInvoiceTemplate fully updates an invoice template.
func (c *Client) UpdateInvoiceTemplate(ctx context.Context, templateID string, template map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPut, "/v2/invoicing/templates/"+templateID, nil, template, nil)
}

// DeleteInvoiceTemplate deletes an invoice template. PayPal answers 204 on
// success.
func (c *Client) DeleteInvoiceTemplate(ctx context.Context, templateID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v2/invoicing/templates/"+templateID, nil, nil, nil)
}
