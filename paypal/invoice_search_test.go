package paypal

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchBody(t *testing.T, doer *stubDoer) map[string]any {
	t.Helper()
	require.NotEmpty(t, doer.requests)

	req := doer.requests[len(doer.requests)-1]
	body := map[string]any{}
	require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
	return body
}

func TestInvoiceSearchAmountRange(t *testing.T) {
	t.Run("inverted range rejected", func(t *testing.T) {
		client := newTestClient(t, respondWith(200, `{}`))

		_, err := client.NewInvoiceSearch().
			ByTotalAmountRange(50, 30).
			Search(context.Background())
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "total_amount_range", validationErr.Filter)
	})

	t.Run("inverted range rejected regardless of other filters", func(t *testing.T) {
		client := newTestClient(t, respondWith(200, `{}`))

		_, err := client.NewInvoiceSearch().
			ByRecipientEmail("bill@example.com").
			ByTotalAmountRange(50, 30).
			ByInvoiceNumber("INV-0001").
			Search(context.Background())

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("valid range serialized with client currency", func(t *testing.T) {
		doer := respondWith(200, `{"total_items":0}`)
		client := newTestClient(t, doer)

		_, err := client.NewInvoiceSearch().
			ByTotalAmountRange(30, 50).
			Search(context.Background())
		require.NoError(t, err)

		body := searchBody(t, doer)
		amountRange := body["total_amount_range"].(map[string]any)
		lower := amountRange["lower_amount"].(map[string]any)
		upper := amountRange["upper_amount"].(map[string]any)
		assert.Equal(t, "30", lower["value"])
		assert.Equal(t, "USD", lower["currency_code"])
		assert.Equal(t, "50", upper["value"])
	})
}

func TestInvoiceSearchStatus(t *testing.T) {
	t.Run("invalid status rejected", func(t *testing.T) {
		client := newTestClient(t, respondWith(200, `{}`))

		_, err := client.NewInvoiceSearch().
			ByStatus([]string{"DECLINED"}).
			Search(context.Background())
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "DECLINED")
	})

	t.Run("valid statuses preserved in order", func(t *testing.T) {
		doer := respondWith(200, `{"total_items":0}`)
		client := newTestClient(t, doer)

		_, err := client.NewInvoiceSearch().
			ByStatus([]string{"PAID", "MARKED_AS_PAID"}).
			Search(context.Background())
		require.NoError(t, err)

		body := searchBody(t, doer)
		assert.Equal(t, []any{"PAID", "MARKED_AS_PAID"}, body["status"])
	})
}

func TestInvoiceSearchDateRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("unknown date field rejected", func(t *testing.T) {
		client := newTestClient(t, respondWith(200, `{}`))

		_, err := client.NewInvoiceSearch().
			ByDateRange(start, end, "settlement_date").
			Search(context.Background())
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "settlement_date", validationErr.Filter)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		client := newTestClient(t, respondWith(200, `{}`))

		_, err := client.NewInvoiceSearch().
			ByDateRange(end, start, "invoice_date").
			Search(context.Background())

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Reason, "start date is after end date")
	})

	t.Run("valid range serialized under field_range key", func(t *testing.T) {
		doer := respondWith(200, `{"total_items":0}`)
		client := newTestClient(t, doer)

		_, err := client.NewInvoiceSearch().
			ByDateRange(start, end, "due_date").
			Search(context.Background())
		require.NoError(t, err)

		body := searchBody(t, doer)
		dateRange := body["due_date_range"].(map[string]any)
		assert.Equal(t, "2024-03-01", dateRange["start"])
		assert.Equal(t, "2024-03-31", dateRange["end"])
	})
}

func TestInvoiceSearchConsumption(t *testing.T) {
	doer := respondWith(200, `{"total_items":0}`)
	client := newTestClient(t, doer)

	search := client.NewInvoiceSearch().ByRecipientEmail("bill@example.com")
	_, err := search.Search(context.Background())
	require.NoError(t, err)

	// The builder is consumed; a second dispatch is refused.
	_, err = search.Search(context.Background())
	assert.ErrorIs(t, err, ErrSearchConsumed)

	// A fresh builder starts from an empty filter set.
	_, err = client.NewInvoiceSearch().Search(context.Background())
	require.NoError(t, err)

	body := searchBody(t, doer)
	assert.Empty(t, body)
}

func TestInvoiceSearchLastWriteWins(t *testing.T) {
	doer := respondWith(200, `{"total_items":0}`)
	client := newTestClient(t, doer)

	_, err := client.NewInvoiceSearch().
		ByInvoiceNumber("INV-0001").
		ByInvoiceNumber("INV-0002").
		Search(context.Background())
	require.NoError(t, err)

	body := searchBody(t, doer)
	assert.Equal(t, "INV-0002", body["invoice_number"])
}

func TestInvoiceSearchPagination(t *testing.T) {
	doer := respondWith(200, `{"total_items":0}`)
	client := newTestClient(t, doer)

	_, err := client.NewInvoiceSearch().
		Page(2).
		PageSize(40).
		WithTotals(true).
		Search(context.Background())
	require.NoError(t, err)

	req := doer.requests[0]
	assert.Equal(t, "/v2/invoicing/search-invoices", req.URL.Path)
	queryParams := req.URL.Query()
	assert.Equal(t, "2", queryParams.Get("page"))
	assert.Equal(t, "40", queryParams.Get("page_size"))
	assert.Equal(t, "true", queryParams.Get("total_required"))
}
