// Package paypal provides a client for the PayPal REST API.
//
// The client authenticates through the OAuth2 client-credentials grant and
// exposes one method per REST endpoint across the orders, payments, billing,
// subscriptions, invoicing, disputes, payouts, webhooks, tracking, identity,
// vault and partner-referral resource groups.
//
// # Architecture
//
//   - Client: shared configuration, cached access token and transport
//   - Config: validated, immutable runtime configuration
//   - Resource operations: one file per PayPal resource family
//   - InvoiceSearch: fluent, validated builder for invoice queries
//   - Errors: structured error types for each failure class
//
// # Usage
//
// Configure credentials once and fetch a token before calling resource
// operations:
//
//	client, err := paypal.NewClient(paypal.Credentials{
//		Mode: paypal.ModeSandbox,
//		Sandbox: paypal.AppCredentials{
//			ClientID:     "...",
//			ClientSecret: "...",
//		},
//		Currency: "EUR",
//		Locale:   "en_US",
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if _, err := client.GetAccessToken(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	order, err := client.CreateOrder(ctx, map[string]any{
//		"intent": "CAPTURE",
//		"purchase_units": []map[string]any{
//			{"amount": map[string]any{"currency_code": "EUR", "value": "100.00"}},
//		},
//	})
//
// Responses pass through as decoded maps exactly as PayPal returned them.
// Mutating endpoints that answer HTTP 204 yield an empty result.
//
// # Error Handling
//
// Failures are classified by type:
//
//   - ConfigError: invalid credentials or currency, raised at construction
//   - ValidationError: invalid search filter, raised before any network call
//   - EvidenceError: dispute evidence violating the type/size policy
//   - TransportError: network, timeout or TLS failure
//   - APIError: non-2xx response with PayPal's error body attached
//   - ErrUnauthenticated: operation attempted without an access token
//
// Nothing is retried automatically; in particular a 401 caused by an
// expired token is surfaced rather than silently refreshed and replayed.
package paypal
