package config

import "github.com/morpheusadam/gopaypal/paypal"

// Config represents the complete configuration structure
type Config struct {
	PayPal  paypal.Credentials `mapstructure:"paypal"`
	Logging LoggingConfig      `mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
