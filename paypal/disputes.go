package paypal

import (
	"context"
	"net/http"
)

// ListDisputes lists disputes raised against the merchant.
func (c *Client) ListDisputes(ctx context.Context) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/customer/disputes", nil, nil, nil)
}

// ShowDisputeDetails returns the details of a dispute.
func (c *Client) ShowDisputeDetails(ctx context.Context, disputeID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v1/customer/disputes/"+disputeID, nil, nil, nil)
}

// UpdateDispute applies a JSON patch to a dispute. PayPal answers 204 on
// success.
func (c *Client) UpdateDispute(ctx context.Context, disputeID string, patch []map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPatch, "/v1/customer/disputes/"+disputeID, nil, patch, nil)
}

// UpdateDisputeStatus moves the dispute to require evidence from the given
// party ("SELLER_EVIDENCE" or "BUYER_EVIDENCE").
func (c *Client) UpdateDisputeStatus(ctx context.Context, disputeID, action string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/require-evidence", nil,
		map[string]any{"action": action}, nil)
}

// SettleDispute adjudicates a sandbox dispute in favor of the buyer or the
// merchant.
func (c *Client) SettleDispute(ctx context.Context, disputeID, outcome string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/adjudicate", nil,
		map[string]any{"adjudication_outcome": outcome}, nil)
}

// AcceptDisputeClaim accepts liability for a claim.
func (c *Client) AcceptDisputeClaim(ctx context.Context, disputeID string, body map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/accept-claim", nil, body, nil)
}

// AcceptDisputeOfferResolution accepts the offer made to resolve the
// dispute.
func (c *Client) AcceptDisputeOfferResolution(ctx context.Context, disputeID, note string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/accept-offer", nil,
		map[string]any{"note": note}, nil)
}

// DeclineDisputeOfferResolution declines the offer made to resolve the
// dispute.
func (c *Client) DeclineDisputeOfferResolution(ctx context.Context, disputeID, note string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/deny-offer", nil,
		map[string]any{"note": note}, nil)
}

// AcknowledgeReturnedItem acknowledges that the customer returned the item.
func (c *Client) AcknowledgeReturnedItem(ctx context.Context, disputeID, note, acknowledgementType string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/acknowledge-return-item", nil,
		map[string]any{"note": note, "acknowledgement_type": acknowledgementType}, nil)
}

// EscalateDisputeToClaim escalates an inquiry to a claim.
func (c *Client) EscalateDisputeToClaim(ctx context.Context, disputeID, note string) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/escalate", nil,
		map[string]any{"note": note}, nil)
}

// MakeOfferToResolveDispute proposes a resolution offer to the customer.
func (c *Client) MakeOfferToResolveDispute(ctx context.Context, disputeID string, offer map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/make-offer", nil, offer, nil)
}

// ProvideDisputeEvidence uploads supporting evidence files for a dispute
// claim. Files are validated against PayPal's type and size policy before
// any bytes go on the wire; the evidence payload travels as the "input"
// part of the multipart request.
func (c *Client) ProvideDisputeEvidence(ctx context.Context, disputeID string, files []string, evidence map[string]any) (Result, error) {
	if err := ValidateEvidenceFiles(files); err != nil {
		return nil, err
	}

	body, err := buildEvidenceBody(files, evidence)
	if err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPost, "/v1/customer/disputes/"+disputeID+"/provide-evidence", nil, body, nil)
}
