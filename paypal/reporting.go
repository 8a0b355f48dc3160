package paypal

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// TransactionsParams narrows a transaction listing. StartDate and EndDate
// bound the reporting window; the remaining fields are optional PayPal
// query filters.
type TransactionsParams struct {
	StartDate time.Time `url:"-"`
	EndDate   time.Time `url:"-"`

	TransactionID     string `url:"transaction_id,omitempty"`
	TransactionType   string `url:"transaction_type,omitempty"`
	TransactionStatus string `url:"transaction_status,omitempty"`
	PaymentInstrument string `url:"payment_instrument_type,omitempty"`
	TerminalID        string `url:"terminal_id,omitempty"`
	Fields            string `url:"fields,omitempty"`
	Page              int    `url:"page,omitempty"`
	PageSize          int    `url:"page_size,omitempty"`
}

func (p TransactionsParams) values() (url.Values, error) {
	values, err := query.Values(p)
	if err != nil {
		return nil, err
	}

	if !p.StartDate.IsZero() {
		values.Set("start_date", p.StartDate.Format(time.RFC3339))
	}
	if !p.EndDate.IsZero() {
		values.Set("end_date", p.EndDate.Format(time.RFC3339))
	}
	if p.Fields == "" {
		values.Set("fields", "all")
	}
	return values, nil
}

// ListTransactions lists account transactions within the reporting window.
func (c *Client) ListTransactions(ctx context.Context, params TransactionsParams) (Result, error) {
	queryParams, err := params.values()
	if err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodGet, "/v1/reporting/transactions", queryParams, nil, nil)
}

// ListBalances returns account balances, optionally as of a point in time
// and converted to the given currency.
func (c *Client) ListBalances(ctx context.Context, asOf time.Time, currency string) (Result, error) {
	queryParams := url.Values{}
	if !asOf.IsZero() {
		queryParams.Set("as_of_time", asOf.Format(time.RFC3339))
	}
	if currency != "" {
		queryParams.Set("currency_code", currency)
	}

	return c.do(ctx, http.MethodGet, "/v1/reporting/balances", queryParams, nil, nil)
}
