package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// Pagination defaults for list operations.
const (
	DefaultPageSize = 20
	DefaultPage     = 1
)

// Result is a decoded PayPal response payload. Payloads pass through
// unmodified; no fields are renamed or reshaped client-side.
type Result map[string]any

// ListParams carries the pagination controls shared by list endpoints.
type ListParams struct {
	Page          int  `url:"page"`
	PageSize      int  `url:"page_size"`
	TotalRequired bool `url:"total_required"`
}

// listQuery encodes pagination parameters, applying the documented
// defaults for unset values.
func listQuery(page, pageSize int, totals bool) url.Values {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	values, _ := query.Values(ListParams{
		Page:          page,
		PageSize:      pageSize,
		TotalRequired: totals,
	})
	return values
}

// multipartBody marks a prepared multipart payload so newRequest keeps its
// encoder-chosen content type instead of the JSON default.
type multipartBody struct {
	contentType string
	body        *bytes.Buffer
}

// newRequest assembles an authenticated API request. Header precedence,
// lowest to highest: fixed defaults, client-registered headers, per-call
// extras.
func (c *Client) newRequest(ctx context.Context, token *AccessToken, method, path string, queryParams url.Values, body any, extra map[string]string) (*http.Request, error) {
	requestURL := c.baseURL + path
	if len(queryParams) > 0 {
		requestURL += "?" + queryParams.Encode()
	}

	var reader io.Reader
	contentType := "application/json"

	switch payload := body.(type) {
	case nil:
	case *multipartBody:
		reader = payload.body
		contentType = payload.contentType
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", token.authorization())

	for key, value := range c.requestHeaders() {
		req.Header.Set(key, value)
	}
	for key, value := range extra {
		req.Header.Set(key, value)
	}

	return req, nil
}

// do dispatches one API call: token check, request assembly, transport
// exchange, status check, payload decode. Mutating endpoints answering
// HTTP 204 yield an empty Result rather than an error.
func (c *Client) do(ctx context.Context, method, path string, queryParams url.Values, body any, extra map[string]string) (Result, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, token, method, path, queryParams, body, extra)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Msg("Dispatching PayPal API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: method, URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return Result{}, nil
	}

	result := Result{}
	if err := decodeJSON(raw, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func decodeJSON(raw []byte, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
