package paypal

import (
	"context"
	"net/http"
)

// GenerateInvoiceNumber returns the next sequential invoice number for the
// merchant.
func (c *Client) GenerateInvoiceNumber(ctx context.Context) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/invoicing/generate-next-invoice-number", nil, nil, nil)
}

// CreateInvoice creates a draft invoice.
func (c *Client) CreateInvoice(ctx context.Context, invoice map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/invoicing/invoices", nil, invoice, nil)
}

// ListInvoices lists invoices for the merchant.
func (c *Client) ListInvoices(ctx context.Context, page, pageSize int, totals bool) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/invoicing/invoices", listQuery(page, pageSize, totals), nil, nil)
}

// ShowInvoiceDetails returns the details of an invoice.
func (c *Client) ShowInvoiceDetails(ctx context.Context, invoiceID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/invoicing/invoices/"+invoiceID, nil, nil, nil)
}

// UpdateInvoice fully updates an invoice. Only draft invoices can be
// updated.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID string, invoice map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPut, "/v2/invoicing/invoices/"+invoiceID, nil, invoice, nil)
}

// DeleteInvoice deletes a draft or scheduled invoice. PayPal answers 204 on
// success.
func (c *Client) DeleteInvoice(ctx context.Context, invoiceID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v2/invoicing/invoices/"+invoiceID, nil, nil, nil)
}

// CancelInvoice cancels a sent invoice and notifies the given additional
// recipients.
func (c *Client) CancelInvoice(ctx context.Context, invoiceID, subject, note string, notifyInvoicer, notifyRecipient bool, additionalRecipients []string) (Result, error) {
	body := map[string]any{
		"subject":           subject,
		"note":              note,
		"send_to_invoicer":  notifyInvoicer,
		"send_to_recipient": notifyRecipient,
	}
	if len(additionalRecipients) > 0 {
		body["additional_recipients"] = additionalRecipients
	}

	return c.do(ctx, http.MethodPost, "/v2/invoicing/invoices/"+invoiceID+"/cancel", nil, body, nil)
}

// GenerateInvoiceQRCode generates a QR code image for the invoice payer
// flow.
func (c *Client) GenerateInvoiceQRCode(ctx context.Context, invoiceID string, width, height int) (Result, error) {
	body := map[string]any{
		"width":  width,
		"height": height,
	}
	return c.do(ctx, http.MethodPost, "/v2/invoicing/invoices/"+invoiceID+"/generate-qr-code", nil, body, nil)
}

// RegisterInvoicePayment records a payment made outside of PayPal against
// the invoice.
func (c *Client) RegisterInvoicePayment(ctx context.Context, invoiceID string, payment map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/invoicing/invoices/"+invoiceID+"/payments", nil, payment, nil)
}

// DeleteInvoicePayment removes an externally recorded payment from the
// invoice. PayPal answers 204 on success.
func (c *Client) DeleteInvoicePayment(ctx context.Context, invoiceID, transactionID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v2/invoicing/invoices/"+invoiceID+"/payments/"+transactionID, nil, nil, nil)
}

// RefundInvoice records a refund made outside of PayPal against the
// invoice.
func (c *Client) RefundInvoice(ctx context.Context, invoiceID string, refund map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/invoicing/invoices/"+invoiceID+"/refunds", nil, refund, nil)
}

// DeleteInvoiceRefund removes an externally recorded refund from the
// invoice. PayPal answers 204 on success.
func (c *Client) DeleteInvoiceRefund(ctx context.Context, invoiceID, transactionID string) (Result, error) {
	return c.do(ctx, http.MethodDelete, "/v2/invoicing/invoices/"+invoiceID+"/refunds/"+transactionID, nil, nil, nil)
}

// SendInvoice sends a draft invoice to its recipients.
func (c *Client) SendInvoice(ctx context.Context, invoiceID string, notification map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/invoicing/invoices/"+invoiceID+"/send", nil, notification, nil)
}

// SendInvoiceReminder sends a payment reminder for a sent invoice.
func (c *Client) SendInvoiceReminder(ctx context.Context, invoiceID string, notification map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/invoicing/invoices/"+invoiceID+"/remind", nil, notification, nil)
}
