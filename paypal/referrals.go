package paypal

import (
	"context"
	"net/http"
)

// CreatePartnerReferral shares customer data with PayPal to start the
// partner onboarding flow.
func (c *Client) CreatePartnerReferral(ctx context.Context, referral map[string]any) (Result, error) {
	return c.do(ctx, http.MethodPost, "/v2/customer/partner-referrals", nil, referral, nil)
}

// ShowReferralData returns the referral data shared for an onboarding
// flow.
func (c *Client) ShowReferralData(ctx context.Context, referralID string) (Result, error) {
	return c.do(ctx, http.MethodGet, "/v2/customer/partner-referrals/"+referralID, nil, nil, nil)
}

// ShowSellerStatus returns the onboarding status of a seller integrated
// through the partner.
func (c *Client) ShowSellerStatus(ctx context.Context, partnerID, merchantID string) (Result, error) {
	return c.do(ctx, http.MethodGet,
		"/v1/customer/partners/"+partnerID+"/merchant-integrations/"+merchantID, nil, nil, nil)
}

// ListMerchantCredentials returns the credentials issued to a merchant
// integrated through the partner.
func (c *Client) ListMerchantCredentials(ctx context.Context, partnerID string) (Result, error) {
	return c.do(ctx, http.MethodGet,
		"/v1/customer/partners/"+partnerID+"/merchant-integrations/credentials", nil, nil, nil)
}
