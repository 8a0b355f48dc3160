package paypal

import (
	"sync"

	"github.com/rs/zerolog"
)

// Client is a PayPal REST API client. All resource operations share one
// runtime configuration, one cached access token and one transport.
//
// The zero value is not usable; construct with NewClient. The client is safe
// for concurrent use: token refresh and header mutation are mutex-guarded,
// everything else is read-only after construction.
type Client struct {
	config     *Config
	httpClient Doer
	logger     zerolog.Logger
	baseURL    string

	mu       sync.Mutex
	token    *AccessToken
	currency string
	headers  map[string]string
}

// NewClient creates a PayPal client from the given credentials.
func NewClient(creds Credentials, logger zerolog.Logger, opts ...Option) (*Client, error) {
	config, err := NewConfig(creds)
	if err != nil {
		return nil, err
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = newHTTPClient(options.timeout, config.validateSSL)
	}

	baseURL := config.baseURL
	if options.baseURL != "" {
		baseURL = options.baseURL
	}

	client := &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
		baseURL:    baseURL,
		currency:   config.currency,
		headers:    make(map[string]string),
	}

	// The resolved locale becomes the default Accept-Language header.
	if config.locale != "" {
		client.headers["Accept-Language"] = config.locale
	}

	return client, nil
}

// Config returns the resolved runtime configuration.
func (c *Client) Config() *Config {
	return c.config
}

// SetCurrency changes the default currency for subsequent requests.
// Currencies outside PayPal's supported set are rejected.
func (c *Client) SetCurrency(currency string) error {
	if !currencyAllowed(currency) {
		return &ConfigError{
			Field:  "currency",
			Reason: "currency " + currency + " is not supported by PayPal",
		}
	}

	c.mu.Lock()
	c.currency = currency
	c.mu.Unlock()
	return nil
}

// Currency returns the currently configured currency.
func (c *Client) Currency() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currency
}

// SetRequestHeader registers a header sent with every subsequent request.
// Later writes to the same key win, as do per-call headers.
func (c *Client) SetRequestHeader(key, value string) *Client {
	c.mu.Lock()
	c.headers[key] = value
	c.mu.Unlock()
	return c
}

// SetRequestHeaders registers multiple default request headers at once.
func (c *Client) SetRequestHeaders(headers map[string]string) *Client {
	c.mu.Lock()
	for key, value := range headers {
		c.headers[key] = value
	}
	c.mu.Unlock()
	return c
}

// RequestHeader returns a previously registered default header. Reading a
// key that was never set returns ErrHeaderNotSet; headers must be
// registered explicitly before they can be read back.
func (c *Client) RequestHeader(key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.headers[key]
	if !ok {
		return "", ErrHeaderNotSet
	}
	return value, nil
}

// requestHeaders returns a snapshot of the registered default headers.
func (c *Client) requestHeaders() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[string]string, len(c.headers))
	for key, value := range c.headers {
		snapshot[key] = value
	}
	return snapshot
}
