package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	page     int
	pageSize int
	totals   bool
	currency string
)

func init() {
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(invoicesCmd)
	rootCmd.AddCommand(balancesCmd)

	for _, cmd := range []*cobra.Command{plansCmd, invoicesCmd} {
		cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
		cmd.Flags().IntVar(&pageSize, "page-size", 20, "results per page")
		cmd.Flags().BoolVar(&totals, "totals", false, "include result totals")
	}
	balancesCmd.Flags().StringVar(&currency, "currency", "", "convert balances to this currency")
}

// plansCmd lists billing plans
var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List billing plans",
	RunE:  runPlans,
}

func runPlans(cmd *cobra.Command, args []string) error {
	return listOperation(func(ctx context.Context) (any, error) {
		return client.ListPlans(ctx, page, pageSize, totals)
	})
}

// invoicesCmd lists invoices
var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices",
	RunE:  runInvoices,
}

func runInvoices(cmd *cobra.Command, args []string) error {
	return listOperation(func(ctx context.Context) (any, error) {
		return client.ListInvoices(ctx, page, pageSize, totals)
	})
}

// balancesCmd lists account balances
var balancesCmd = &cobra.Command{
	Use:   "balances",
	Short: "List account balances",
	RunE:  runBalances,
}

func runBalances(cmd *cobra.Command, args []string) error {
	return listOperation(func(ctx context.Context) (any, error) {
		return client.ListBalances(ctx, time.Time{}, currency)
	})
}

// listOperation authenticates, runs one list call and pretty-prints the
// payload as JSON.
func listOperation(op func(context.Context) (any, error)) error {
	ctx := context.Background()

	if _, err := client.GetAccessToken(ctx); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	result, err := op(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
