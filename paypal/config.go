package paypal

import "fmt"

// API environments and their base URLs.
const (
	ModeSandbox = "sandbox"
	ModeLive    = "live"

	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"
)

// allowedCurrencies is the fixed set of ISO 4217 codes PayPal accepts.
var allowedCurrencies = []string{
	"AUD", "BRL", "CAD", "CZK", "DKK", "EUR", "HKD", "HUF", "ILS", "INR",
	"JPY", "MYR", "MXN", "NOK", "NZD", "PHP", "PLN", "GBP", "SGD", "SEK",
	"CHF", "TWD", "THB", "USD", "RUB", "CNY",
}

// AppCredentials holds the REST app credentials for one environment.
type AppCredentials struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
}

// Credentials is the full configuration surface for a client. Both
// environment sections may be present; Mode selects which one is used.
type Credentials struct {
	Mode          string         `mapstructure:"mode"`
	Sandbox       AppCredentials `mapstructure:"sandbox"`
	Live          AppCredentials `mapstructure:"live"`
	Currency      string         `mapstructure:"currency"`
	Locale        string         `mapstructure:"locale"`
	ValidateSSL   bool           `mapstructure:"validate_ssl"`
	PaymentAction string         `mapstructure:"payment_action"`
}

// Config is the resolved, immutable runtime configuration of a client.
type Config struct {
	mode          string
	baseURL       string
	clientID      string
	clientSecret  string
	currency      string
	locale        string
	validateSSL   bool
	paymentAction string
}

// NewConfig validates credentials and resolves them into a runtime
// configuration. Invalid input fails here, never mid-call.
//
// A missing mode is a configuration error; any mode other than "sandbox"
// resolves to "live".
func NewConfig(creds Credentials) (*Config, error) {
	if creds == (Credentials{}) {
		return nil, &ConfigError{Reason: "no credentials provided"}
	}

	if creds.Mode == "" {
		return nil, &ConfigError{Field: "mode", Reason: "missing API mode"}
	}

	mode := creds.Mode
	if mode != ModeSandbox && mode != ModeLive {
		mode = ModeLive
	}

	app := creds.Live
	baseURL := liveBaseURL
	if mode == ModeSandbox {
		app = creds.Sandbox
		baseURL = sandboxBaseURL
	}

	if app.ClientID == "" {
		return nil, &ConfigError{
			Field:  mode + ".client_id",
			Reason: "client_id missing from the provided configuration",
		}
	}
	if app.ClientSecret == "" {
		return nil, &ConfigError{
			Field:  mode + ".client_secret",
			Reason: "client_secret missing from the provided configuration",
		}
	}

	currency := creds.Currency
	if currency == "" {
		currency = "USD"
	}
	if !currencyAllowed(currency) {
		return nil, &ConfigError{
			Field:  "currency",
			Reason: fmt.Sprintf("currency %q is not supported by PayPal", currency),
		}
	}

	return &Config{
		mode:          mode,
		baseURL:       baseURL,
		clientID:      app.ClientID,
		clientSecret:  app.ClientSecret,
		currency:      currency,
		locale:        creds.Locale,
		validateSSL:   creds.ValidateSSL,
		paymentAction: creds.PaymentAction,
	}, nil
}

// Mode returns the resolved API environment.
func (c *Config) Mode() string {
	return c.mode
}

// BaseURL returns the API base URL for the resolved environment.
func (c *Config) BaseURL() string {
	return c.baseURL
}

func currencyAllowed(currency string) bool {
	for _, c := range allowedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}
