package paypal

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxDetailConcurrency bounds parallel detail fetches so a large id list
// cannot flood the API.
const maxDetailConcurrency = 10

// ShowInvoicesDetails fetches details for many invoices concurrently. The
// result maps invoice id to its decoded payload; the first failed fetch
// cancels the remaining ones and is returned.
func (c *Client) ShowInvoicesDetails(ctx context.Context, invoiceIDs []string) (map[string]Result, error) {
	results := make(map[string]Result, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDetailConcurrency)

	var mu sync.Mutex
	for _, invoiceID := range invoiceIDs {
		invoiceID := invoiceID
		g.Go(func() error {
			details, err := c.ShowInvoiceDetails(ctx, invoiceID)
			if err != nil {
				return err
			}

			mu.Lock()
			results[invoiceID] = details
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
