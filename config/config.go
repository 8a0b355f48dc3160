package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gopaypal"))
		}

		// Check /etc
		v.AddConfigPath("/etc/gopaypal/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// PayPal defaults
	v.SetDefault("paypal.mode", "sandbox")
	v.SetDefault("paypal.currency", "USD")
	v.SetDefault("paypal.locale", "en_US")
	v.SetDefault("paypal.validate_ssl", true)
	v.SetDefault("paypal.payment_action", "Sale")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid. Credential semantics
// (mode resolution, currency allow-list) are enforced by paypal.NewConfig;
// only what the CLI itself needs is checked here.
func validate(cfg *Config) error {
	if cfg.PayPal.Mode == "" {
		return fmt.Errorf("paypal.mode is required")
	}

	active := cfg.PayPal.Live
	if cfg.PayPal.Mode == "sandbox" {
		active = cfg.PayPal.Sandbox
	}
	if active.ClientID == "" || active.ClientID == "your-client-id-here" {
		return fmt.Errorf("paypal.%s.client_id must be set to a valid client id", cfg.PayPal.Mode)
	}
	if active.ClientSecret == "" {
		return fmt.Errorf("paypal.%s.client_secret must be set", cfg.PayPal.Mode)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
