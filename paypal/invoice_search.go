package paypal

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// invoiceStatuses is the set of statuses accepted by the invoice search
// endpoint.
var invoiceStatuses = []string{
	"DRAFT", "SENT", "SCHEDULED", "PAID", "MARKED_AS_PAID", "CANCELLED",
	"REFUNDED", "PARTIALLY_PAID", "PARTIALLY_REFUNDED", "MARKED_AS_REFUNDED",
	"UNPAID", "PENDING", "PAYMENT_PENDING",
}

// invoiceDateFields are the date dimensions invoices can be filtered on.
// Each serializes as "<field>_range" in the search request.
var invoiceDateFields = []string{
	"invoice_date", "due_date", "payment_date", "creation_date",
}

// InvoiceSearch accumulates validated search filters for the invoice
// search endpoint. Filter methods chain; setting the same filter twice
// keeps the last value. The first invalid filter is latched and reported
// by Search before any network call. A builder is consumed by Search;
// start a fresh one per query.
type InvoiceSearch struct {
	client  *Client
	filters map[string]any

	page     int
	pageSize int
	totals   bool

	err      error
	consumed bool
}

// NewInvoiceSearch starts an empty invoice search.
func (c *Client) NewInvoiceSearch() *InvoiceSearch {
	return &InvoiceSearch{
		client:  c,
		filters: make(map[string]any),
	}
}

// fail latches the first validation error; later filters are ignored once
// the builder is poisoned.
func (s *InvoiceSearch) fail(filter, reason string) *InvoiceSearch {
	if s.err == nil {
		s.err = &ValidationError{Filter: filter, Reason: reason}
	}
	return s
}

// Err returns the latched validation error, if any.
func (s *InvoiceSearch) Err() error {
	return s.err
}

// ByRecipientEmail filters by the invoice recipient email address.
func (s *InvoiceSearch) ByRecipientEmail(email string) *InvoiceSearch {
	s.filters["recipient_email"] = email
	return s
}

// ByRecipientFirstName filters by the recipient first name.
func (s *InvoiceSearch) ByRecipientFirstName(name string) *InvoiceSearch {
	s.filters["recipient_first_name"] = name
	return s
}

// ByRecipientLastName filters by the recipient last name.
func (s *InvoiceSearch) ByRecipientLastName(name string) *InvoiceSearch {
	s.filters["recipient_last_name"] = name
	return s
}

// ByRecipientBusinessName filters by the recipient business name.
func (s *InvoiceSearch) ByRecipientBusinessName(name string) *InvoiceSearch {
	s.filters["recipient_business_name"] = name
	return s
}

// ByInvoiceNumber filters by invoice number.
func (s *InvoiceSearch) ByInvoiceNumber(number string) *InvoiceSearch {
	s.filters["invoice_number"] = number
	return s
}

// ByCurrencyCode filters by invoice currency. An empty code falls back to
// the client currency.
func (s *InvoiceSearch) ByCurrencyCode(code string) *InvoiceSearch {
	if code == "" {
		code = s.client.Currency()
	}
	s.filters["currency_code"] = code
	return s
}

// ByMemo filters by the invoice memo text.
func (s *InvoiceSearch) ByMemo(memo string) *InvoiceSearch {
	s.filters["memo"] = memo
	return s
}

// ByTotalAmountRange filters by invoice total. The range must not be
// inverted.
func (s *InvoiceSearch) ByTotalAmountRange(min, max float64) *InvoiceSearch {
	if min > max {
		return s.fail("total_amount_range", "minimum amount is greater than maximum amount")
	}

	currency := s.client.Currency()
	s.filters["total_amount_range"] = map[string]any{
		"lower_amount": map[string]any{
			"currency_code": currency,
			"value":         strconv.FormatFloat(min, 'f', -1, 64),
		},
		"upper_amount": map[string]any{
			"currency_code": currency,
			"value":         strconv.FormatFloat(max, 'f', -1, 64),
		},
	}
	return s
}

// ByDateRange filters by one of the recognized date dimensions
// (invoice_date, due_date, payment_date, creation_date). Unknown fields
// and inverted ranges are rejected rather than passed through.
func (s *InvoiceSearch) ByDateRange(start, end time.Time, field string) *InvoiceSearch {
	if !dateFieldAllowed(field) {
		return s.fail(field, "unrecognized date filter field")
	}
	if start.After(end) {
		return s.fail(field+"_range", "start date is after end date")
	}

	s.filters[field+"_range"] = map[string]any{
		"start": start.Format("2006-01-02"),
		"end":   end.Format("2006-01-02"),
	}
	return s
}

// ByStatus filters by invoice status. Every status must be part of the
// allowed enumeration; order of the supplied list is preserved in the
// request.
func (s *InvoiceSearch) ByStatus(statuses []string) *InvoiceSearch {
	for _, status := range statuses {
		if !statusAllowed(status) {
			return s.fail("status", fmt.Sprintf("invalid invoice status %q", status))
		}
	}

	s.filters["status"] = statuses
	return s
}

// ByArchivedStatus filters by archived state. Passing nil selects both
// archived and unarchived invoices.
func (s *InvoiceSearch) ByArchivedStatus(archived *bool) *InvoiceSearch {
	if archived != nil {
		s.filters["archived"] = *archived
	}
	return s
}

// ByFields restricts which invoice fields the response includes.
func (s *InvoiceSearch) ByFields(fields []string) *InvoiceSearch {
	s.filters["fields"] = fields
	return s
}

// Page sets the result page to fetch.
func (s *InvoiceSearch) Page(page int) *InvoiceSearch {
	s.page = page
	return s
}

// PageSize sets the number of results per page.
func (s *InvoiceSearch) PageSize(size int) *InvoiceSearch {
	s.pageSize = size
	return s
}

// WithTotals toggles result counts in the response.
func (s *InvoiceSearch) WithTotals(totals bool) *InvoiceSearch {
	s.totals = totals
	return s
}

// Search validates and executes the accumulated query. The builder is
// consumed: filters set here never leak into a later search started with
// NewInvoiceSearch.
func (s *InvoiceSearch) Search(ctx context.Context) (Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.consumed {
		return nil, ErrSearchConsumed
	}
	s.consumed = true

	body := make(map[string]any, len(s.filters))
	for name, value := range s.filters {
		body[name] = value
	}

	return s.client.do(ctx, http.MethodPost, "/v2/invoicing/search-invoices",
		listQuery(s.page, s.pageSize, s.totals), body, nil)
}

func statusAllowed(status string) bool {
	for _, s := range invoiceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func dateFieldAllowed(field string) bool {
	for _, f := range invoiceDateFields {
		if f == field {
			return true
		}
	}
	return false
}
