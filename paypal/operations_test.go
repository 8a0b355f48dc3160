package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Endpoint wiring for representative operations of each resource family.
func TestOperationEndpoints(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func(*Client) (Result, error)
		wantMethod string
		wantPath   string
	}{
		{
			name: "create order",
			call: func(c *Client) (Result, error) {
				return c.CreateOrder(ctx, map[string]any{"intent": "CAPTURE"})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v2/checkout/orders",
		},
		{
			name: "capture order payment",
			call: func(c *Client) (Result, error) {
				return c.CapturePaymentOrder(ctx, "5O190127TN364715T", nil)
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v2/checkout/orders/5O190127TN364715T/capture",
		},
		{
			name: "void authorized payment",
			call: func(c *Client) (Result, error) {
				return c.VoidAuthorizedPayment(ctx, "0VF52814937998046")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v2/payments/authorizations/0VF52814937998046/void",
		},
		{
			name: "refund captured payment",
			call: func(c *Client) (Result, error) {
				return c.RefundCapturedPayment(ctx, "2GG279541U471931P", map[string]any{
					"amount": map[string]any{"value": "10.00", "currency_code": "USD"},
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v2/payments/captures/2GG279541U471931P/refund",
		},
		{
			name: "deactivate plan",
			call: func(c *Client) (Result, error) {
				return c.DeactivatePlan(ctx, "P-7GL4271244454362WXNWU5NQ")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v1/billing/plans/P-7GL4271244454362WXNWU5NQ/deactivate",
		},
		{
			name: "update product",
			call: func(c *Client) (Result, error) {
				return c.UpdateProduct(ctx, "PROD-XYAB12ABSB7868434",
					[]map[string]any{{"op": "replace", "path": "/description", "value": "updated"}})
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/v1/catalogs/products/PROD-XYAB12ABSB7868434",
		},
		{
			name: "suspend subscription",
			call: func(c *Client) (Result, error) {
				return c.SuspendSubscription(ctx, "I-BW452GLLEP1G", "payment issue")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v1/billing/subscriptions/I-BW452GLLEP1G/suspend",
		},
		{
			name: "generate invoice number",
			call: func(c *Client) (Result, error) {
				return c.GenerateInvoiceNumber(ctx)
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v2/invoicing/generate-next-invoice-number",
		},
		{
			name: "send invoice reminder",
			call: func(c *Client) (Result, error) {
				return c.SendInvoiceReminder(ctx, "INV2-Z56S-5LLA-Q52L-CPZ5",
					map[string]any{"subject": "Reminder"})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/remind",
		},
		{
			name: "delete invoice template",
			call: func(c *Client) (Result, error) {
				return c.DeleteInvoiceTemplate(ctx, "TEMP-19V05281TU309413B")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/v2/invoicing/templates/TEMP-19V05281TU309413B",
		},
		{
			name: "escalate dispute",
			call: func(c *Client) (Result, error) {
				return c.EscalateDisputeToClaim(ctx, "PP-D-27803", "escalating to claim")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v1/customer/disputes/PP-D-27803/escalate",
		},
		{
			name: "cancel unclaimed payout item",
			call: func(c *Client) (Result, error) {
				return c.CancelUnclaimedPayoutItem(ctx, "8AELMXH8UB2P8")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v1/payments/payouts-item/8AELMXH8UB2P8/cancel",
		},
		{
			name: "verify webhook signature",
			call: func(c *Client) (Result, error) {
				return c.VerifyWebhookSignature(ctx, map[string]any{"webhook_id": "1JE4291016473214C"})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v1/notifications/verify-webhook-signature",
		},
		{
			name: "add batch tracking",
			call: func(c *Client) (Result, error) {
				return c.AddBatchTracking(ctx, []map[string]any{{"transaction_id": "8MC585209K746392H"}})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v1/shipping/trackers-batch",
		},
		{
			name: "delete user",
			call: func(c *Client) (Result, error) {
				return c.DeleteUser(ctx, "GDYwmabnbEYORC1")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/v2/scim/Users/GDYwmabnbEYORC1",
		},
		{
			name: "delete payment source token",
			call: func(c *Client) (Result, error) {
				return c.DeletePaymentSourceToken(ctx, "8kk8451t")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/v3/vault/payment-tokens/8kk8451t",
		},
		{
			name: "create partner referral",
			call: func(c *Client) (Result, error) {
				return c.CreatePartnerReferral(ctx, map[string]any{"email": "seller@example.com"})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/v2/customer/partner-referrals",
		},
		{
			name: "show seller status",
			call: func(c *Client) (Result, error) {
				return c.ShowSellerStatus(ctx, "U6E69K99P3G88", "8LQLM2ML4ZTYU")
			},
			wantMethod: http.MethodGet,
			wantPath:   "/v1/customer/partners/U6E69K99P3G88/merchant-integrations/8LQLM2ML4ZTYU",
		},
		{
			name: "delete web experience profile",
			call: func(c *Client) (Result, error) {
				return c.DeleteWebExperienceProfile(ctx, "XP-RFV4-PVD8-AGHJ-8E5J")
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/v1/payment-experience/web-profiles/XP-RFV4-PVD8-AGHJ-8E5J",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := respondWith(200, `{}`)
			client := newTestClient(t, doer)

			_, err := tt.call(client)
			require.NoError(t, err)

			req := doer.requests[0]
			assert.Equal(t, tt.wantMethod, req.Method)
			assert.Equal(t, tt.wantPath, req.URL.Path)
		})
	}
}

func TestReferencedPayoutAttributionHeader(t *testing.T) {
	doer := respondWith(201, `{"links":[]}`)
	client := newTestClient(t, doer)

	_, err := client.CreateReferencedBatchPayout(context.Background(), "FLAVORsb-1324",
		map[string]any{"referenced_payouts": []map[string]any{}})
	require.NoError(t, err)

	req := doer.requests[0]
	assert.Equal(t, "/v1/payments/referenced-payouts", req.URL.Path)
	assert.Equal(t, "FLAVORsb-1324", req.Header.Get("PayPal-Partner-Attribution-Id"))
}

func TestCancelInvoiceBody(t *testing.T) {
	doer := respondWith(204, "")
	client := newTestClient(t, doer)

	result, err := client.CancelInvoice(context.Background(), "INV2-Z56S-5LLA-Q52L-CPZ5",
		"Invoice cancelled", "duplicate", true, true, []string{"bill@example.com"})
	require.NoError(t, err)
	assert.Empty(t, result)

	body := map[string]any{}
	require.NoError(t, json.NewDecoder(doer.requests[0].Body).Decode(&body))
	assert.Equal(t, "Invoice cancelled", body["subject"])
	assert.Equal(t, true, body["send_to_recipient"])
	assert.Equal(t, []any{"bill@example.com"}, body["additional_recipients"])
}

func TestProvideDisputeEvidence(t *testing.T) {
	t.Run("invalid file stops before any network call", func(t *testing.T) {
		doer := respondWith(200, `{}`)
		client := newTestClient(t, doer)

		_, err := client.ProvideDisputeEvidence(context.Background(), "PP-D-27803",
			[]string{"evidence.exe"}, nil)

		var evidenceErr *EvidenceError
		require.ErrorAs(t, err, &evidenceErr)
		assert.Empty(t, doer.requests)
	})

	t.Run("valid files upload as multipart", func(t *testing.T) {
		file := writeTestFile(t, t.TempDir(), "receipt.jpg", 2048)

		doer := respondWith(200, `{}`)
		client := newTestClient(t, doer)

		_, err := client.ProvideDisputeEvidence(context.Background(), "PP-D-27803",
			[]string{file}, map[string]any{"evidence_type": "PROOF_OF_FULFILLMENT"})
		require.NoError(t, err)

		req := doer.requests[0]
		assert.Equal(t, "/v1/customer/disputes/PP-D-27803/provide-evidence", req.URL.Path)
		assert.True(t, strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data"))
	})
}

func TestWebhookCreateBody(t *testing.T) {
	doer := respondWith(201, `{"id":"1JE4291016473214C"}`)
	client := newTestClient(t, doer)

	_, err := client.CreateWebhook(context.Background(), "https://example.com/hook",
		[]string{"PAYMENT.AUTHORIZATION.CREATED", "PAYMENT.AUTHORIZATION.VOIDED"})
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.NewDecoder(doer.requests[0].Body).Decode(&body))
	assert.Equal(t, "https://example.com/hook", body["url"])
	assert.Equal(t, []any{
		map[string]any{"name": "PAYMENT.AUTHORIZATION.CREATED"},
		map[string]any{"name": "PAYMENT.AUTHORIZATION.VOIDED"},
	}, body["event_types"])
}

func TestListTransactionsQuery(t *testing.T) {
	doer := respondWith(200, `{"transaction_details":[]}`)
	client := newTestClient(t, doer)

	_, err := client.ListTransactions(context.Background(), TransactionsParams{
		TransactionStatus: "S",
		Page:              2,
		PageSize:          100,
	})
	require.NoError(t, err)

	queryParams := doer.requests[0].URL.Query()
	assert.Equal(t, "S", queryParams.Get("transaction_status"))
	assert.Equal(t, "2", queryParams.Get("page"))
	assert.Equal(t, "100", queryParams.Get("page_size"))
	assert.Equal(t, "all", queryParams.Get("fields"))
}

func TestShowInvoicesDetails(t *testing.T) {
	doer := &stubDoer{}
	doer.handler = func(r *http.Request) (*http.Response, error) {
		parts := strings.Split(r.URL.Path, "/")
		invoiceID := parts[len(parts)-1]
		return jsonResponse(200, `{"id":"`+invoiceID+`"}`), nil
	}
	client := newTestClient(t, doer)

	ids := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		ids = append(ids, fmt.Sprintf("INV2-%04d", i))
	}

	results, err := client.ShowInvoicesDetails(context.Background(), ids)
	require.NoError(t, err)

	require.Len(t, results, len(ids))
	for _, id := range ids {
		assert.Equal(t, id, results[id]["id"])
	}

	// Every concurrent fetch must be recorded exactly once.
	assert.Len(t, doer.recorded(), len(ids))
}
