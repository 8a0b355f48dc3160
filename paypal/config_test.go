package paypal

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		wantErr  string
		wantMode string
	}{
		{
			name:    "empty credentials",
			creds:   Credentials{},
			wantErr: "no credentials provided",
		},
		{
			name: "missing mode",
			creds: Credentials{
				Sandbox: AppCredentials{ClientID: "id", ClientSecret: "secret"},
			},
			wantErr: "missing API mode",
		},
		{
			name: "sandbox mode",
			creds: Credentials{
				Mode:    ModeSandbox,
				Sandbox: AppCredentials{ClientID: "id", ClientSecret: "secret"},
			},
			wantMode: ModeSandbox,
		},
		{
			name: "live mode",
			creds: Credentials{
				Mode: ModeLive,
				Live: AppCredentials{ClientID: "id", ClientSecret: "secret"},
			},
			wantMode: ModeLive,
		},
		{
			name: "missing client id for resolved mode",
			creds: Credentials{
				Mode:    ModeSandbox,
				Live:    AppCredentials{ClientID: "id", ClientSecret: "secret"},
				Sandbox: AppCredentials{ClientSecret: "secret"},
			},
			wantErr: "client_id missing",
		},
		{
			name: "missing client secret for resolved mode",
			creds: Credentials{
				Mode:    ModeSandbox,
				Sandbox: AppCredentials{ClientID: "id"},
			},
			wantErr: "client_secret missing",
		},
		{
			name: "unsupported currency",
			creds: Credentials{
				Mode:     ModeSandbox,
				Sandbox:  AppCredentials{ClientID: "id", ClientSecret: "secret"},
				Currency: "BTC",
			},
			wantErr: "not supported by PayPal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewConfig(tt.creds)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				var configErr *ConfigError
				assert.ErrorAs(t, err, &configErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, config.Mode())
		})
	}
}

// An unrecognized mode is not an error; it resolves to the live
// environment.
func TestUnrecognizedModeResolvesToLive(t *testing.T) {
	config, err := NewConfig(Credentials{
		Mode: "bogus",
		Live: AppCredentials{ClientID: "id", ClientSecret: "secret"},
	})
	require.NoError(t, err)

	assert.Equal(t, ModeLive, config.Mode())
	assert.Equal(t, "https://api-m.paypal.com", config.BaseURL())
}

func TestBaseURLPerMode(t *testing.T) {
	config, err := NewConfig(Credentials{
		Mode:    ModeSandbox,
		Sandbox: AppCredentials{ClientID: "id", ClientSecret: "secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://api-m.sandbox.paypal.com", config.BaseURL())
}

func TestSetCurrency(t *testing.T) {
	client, err := NewClient(testCredentials(), zerolog.Nop())
	require.NoError(t, err)

	t.Run("all supported currencies round-trip", func(t *testing.T) {
		for _, currency := range allowedCurrencies {
			require.NoError(t, client.SetCurrency(currency))
			assert.Equal(t, currency, client.Currency())
		}
	})

	t.Run("unsupported currency rejected", func(t *testing.T) {
		require.NoError(t, client.SetCurrency("EUR"))

		err := client.SetCurrency("XYZ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not supported by PayPal")

		// The previous currency stays in effect.
		assert.Equal(t, "EUR", client.Currency())
	})
}

func TestDefaultCurrency(t *testing.T) {
	config, err := NewConfig(Credentials{
		Mode:    ModeSandbox,
		Sandbox: AppCredentials{ClientID: "id", ClientSecret: "secret"},
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", config.currency)
}
