package paypal

import (
	"crypto/tls"
	"encoding/json"
	"net/http"
	"time"
)

// Doer performs a single HTTP exchange. *http.Client satisfies it; tests
// install a programmable stub so every resource operation can be exercised
// without network access.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// newHTTPClient builds the production transport. validateSSL=false disables
// certificate verification, matching the validate_ssl configuration flag;
// only sandbox setups behind intercepting proxies should need it.
func newHTTPClient(timeout time.Duration, validateSSL bool) *http.Client {
	client := &http.Client{Timeout: timeout}

	if !validateSSL {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return client
}

// decodeAPIError turns a non-2xx response body into an APIError. The raw
// payload is kept verbatim so callers can branch on PayPal's own error
// name and details.
func decodeAPIError(statusCode int, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Raw:        raw,
	}

	// Best effort: the body is not always JSON (HTML error pages from
	// intermediaries, empty 5xx bodies).
	_ = json.Unmarshal(raw, apiErr)

	return apiErr
}
