package paypal

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// expirySkew is subtracted from the advertised token lifetime so a token
// is refreshed shortly before PayPal would actually reject it.
const expirySkew = 60 * time.Second

// AccessToken is an OAuth2 bearer token obtained through the
// client-credentials grant.
type AccessToken struct {
	Token     string `json:"access_token"`
	Type      string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
	AppID     string `json:"app_id,omitempty"`

	fetchedAt time.Time
}

// Expired reports whether the token is past its advertised lifetime.
// Externally supplied tokens without an expiry never expire here; PayPal
// remains the authority and will reject them with a 401.
func (t *AccessToken) Expired() bool {
	if t.ExpiresIn == 0 || t.fetchedAt.IsZero() {
		return false
	}
	lifetime := time.Duration(t.ExpiresIn)*time.Second - expirySkew
	return time.Since(t.fetchedAt) >= lifetime
}

func (t *AccessToken) authorization() string {
	tokenType := t.Type
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + t.Token
}

// GetAccessToken performs the client-credentials exchange and caches the
// resulting token for subsequent calls. A still-valid cached token is
// returned without a network round trip.
//
// A non-2xx response from the token endpoint comes back as an *APIError
// carrying PayPal's error body verbatim; transport failures come back as
// a *TransportError. Neither panics and nothing is retried.
func (c *Client) GetAccessToken(ctx context.Context) (*AccessToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && !c.token.Expired() {
		return c.token, nil
	}

	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	c.token = token
	return token, nil
}

// SetAccessToken installs an externally obtained token, e.g. one shared
// through an application-level cache.
func (c *Client) SetAccessToken(token AccessToken) {
	c.mu.Lock()
	c.token = &token
	c.mu.Unlock()
}

// ensureToken returns the active token, lazily refreshing an expired one.
// Operations attempted before any token was obtained fail with
// ErrUnauthenticated; the client never fetches a first token implicitly.
func (c *Client) ensureToken(ctx context.Context) (*AccessToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == nil {
		return nil, ErrUnauthenticated
	}

	if c.token.Expired() {
		token, err := c.fetchToken(ctx)
		if err != nil {
			return nil, err
		}
		c.token = token
	}

	return c.token, nil
}

// fetchToken performs the OAuth2 client-credentials exchange. Callers must
// hold c.mu.
func (c *Client) fetchToken(ctx context.Context) (*AccessToken, error) {
	tokenURL := c.baseURL + "/v1/oauth2/token"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL,
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.config.clientID, c.config.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", tokenURL).Msg("Requesting PayPal access token")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, URL: tokenURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, URL: tokenURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, raw)
	}

	token := &AccessToken{fetchedAt: time.Now()}
	if err := decodeJSON(raw, token); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("token_type", token.Type).
		Int64("expires_in", token.ExpiresIn).
		Msg("Obtained PayPal access token")

	return token, nil
}
