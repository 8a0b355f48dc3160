package paypal

import "time"

const defaultTimeout = 30 * time.Second

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	httpClient Doer
	baseURL    string
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		timeout: defaultTimeout,
	}
}

// WithTimeout sets the HTTP request timeout. Every call is bounded by this
// deadline in addition to any context deadline supplied by the caller.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying transport. Anything implementing
// Doer works, which is how tests substitute a programmable stub.
func WithHTTPClient(httpClient Doer) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithBaseURL overrides the API base URL resolved from the mode. Intended
// for tests running against a local fixture server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}
