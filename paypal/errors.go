package paypal

import (
	"errors"
	"fmt"
)

// Common errors returned by the PayPal client.
var (
	// ErrUnauthenticated is returned when an API operation is attempted
	// before an access token has been obtained or supplied.
	ErrUnauthenticated = errors.New("no access token set, call GetAccessToken first")

	// ErrHeaderNotSet is returned when reading a request header that was
	// never registered on the client.
	ErrHeaderNotSet = errors.New("request header is not set")

	// ErrSearchConsumed is returned when Search is invoked twice on the
	// same builder.
	ErrSearchConsumed = errors.New("invoice search already executed, start a new search")
)

// ConfigError indicates invalid or incomplete client configuration.
// It is returned synchronously at construction time, never mid-call.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("paypal config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("paypal config: %s", e.Reason)
}

// ValidationError indicates an invalid search filter or parameter
// combination, detected before any network call is made.
type ValidationError struct {
	Filter string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Filter, e.Reason)
}

// EvidenceError indicates a dispute evidence file violating PayPal's
// type or size policy.
type EvidenceError struct {
	File   string
	Reason string
}

func (e *EvidenceError) Error() string {
	return fmt.Sprintf("evidence file %q: %s", e.File, e.Reason)
}

// TransportError indicates a network-level failure (timeout, connection
// refused, TLS handshake) as opposed to an HTTP error response.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorDetail is a single entry of PayPal's error detail list.
type ErrorDetail struct {
	Field       string `json:"field,omitempty"`
	Issue       string `json:"issue,omitempty"`
	Description string `json:"description,omitempty"`
}

// APIError represents a non-2xx response from the PayPal API. The decoded
// error body is exposed so callers can branch on PayPal's own error name;
// Raw holds the upstream payload verbatim.
type APIError struct {
	StatusCode int
	Name       string        `json:"name"`
	Message    string        `json:"message"`
	Details    []ErrorDetail `json:"details"`
	Raw        []byte
}

func (e *APIError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("paypal API error: status %d: %s: %s", e.StatusCode, e.Name, e.Message)
	}
	return fmt.Sprintf("paypal API error: status %d: %s", e.StatusCode, string(e.Raw))
}

// IsUnauthorized reports whether the error indicates an authentication failure.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsNotFound reports whether the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}
