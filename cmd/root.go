package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/morpheusadam/gopaypal/config"
	"github.com/morpheusadam/gopaypal/paypal"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *paypal.Client

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records build metadata for the version command.
func SetVersion(v, t string) {
	version = v
	buildTime = t
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gopaypal",
	Short: "A tool to inspect a PayPal merchant account from the command line",
	Long: `gopaypal is a CLI around the PayPal REST API client. It can fetch
access tokens and list billing plans, invoices and account balances for
the configured sandbox or live environment.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the PayPal client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create PayPal client
	client, err = paypal.NewClient(cfg.PayPal, logger)
	if err != nil {
		return fmt.Errorf("failed to create PayPal client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; drop colour when not writing to a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// tokenCmd fetches and prints an access token
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Fetch an OAuth2 access token",
	Long:  `Perform the client-credentials exchange and print the resulting bearer token.`,
	RunE:  runToken,
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	token, err := client.GetAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	fmt.Printf("Token type: %s\n", token.Type)
	fmt.Printf("Expires in: %ds\n", token.ExpiresIn)
	fmt.Printf("Token:      %s\n", token.Token)
	return nil
}

// testCmd verifies connectivity and credentials
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to PayPal",
	Long:  `Test credentials against the configured PayPal environment by requesting an access token.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to PayPal (%s mode) at %s...\n",
		client.Config().Mode(), client.Config().BaseURL())

	ctx := context.Background()
	if _, err := client.GetAccessToken(ctx); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	fmt.Println("✓ Authentication successful!")
	fmt.Printf("- Currency: %s\n", client.Currency())
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopaypal %s (built %s)\n", version, buildTime)
	},
	// No config needed to print the version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}
