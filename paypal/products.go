package paypal

import (
	"context"
	"net/http"
)

// CreateProduct creates a catalog product.
func (c *Client) CreateProduct(ctx context.Context, product map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/catalogs/products", nil, product, nil)
}

// ListProducts lists catalog products.
func (c *Client) ListProducts(ctx context.Context, page, pageSize int, totals bool) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/catalogs/products", listQuery(page, pageSize, totals), nil, nil)
}

// ShowProductDetails returns the details of a catalog product.
func (c *Client) ShowProductDetails(ctx context.Context, productID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/catalogs/products/"+productID, nil, nil, nil)
}

// UpdateProduct applies a JSON patch to a catalog product. PayPal answers
// 204 on success.
func (c *Client) UpdateProduct(ctx context.Context, productID string, patch []map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPatch, "/v1/catalogs/products/"+productID, nil, patch, nil)
}
