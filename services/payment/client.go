package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"spordate/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// Client isolates all direct interaction with the payment provider. Every
// other component depends on this interface, never on the provider SDK.
type Client interface {
	CreateCheckoutSession(ctx context.Context, code models.PackageCode, originURL string, metadata map[string]string) (*models.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error)
}

// StripeClient implements Client against Stripe Checkout. The API key is
// set globally in main from configuration, matching the SDK's usage model.
type StripeClient struct {
	logger *zap.Logger
}

func NewStripeClient(logger *zap.Logger) *StripeClient {
	return &StripeClient{logger: logger}
}

// CreateCheckoutSession resolves the price from the server-side catalog,
// creates one hosted session at the provider and returns it with status
// open. Success and cancel redirect targets are derived from the buyer's
// origin URL.
func (c *StripeClient) CreateCheckoutSession(ctx context.Context, code models.PackageCode, originURL string, metadata map[string]string) (*models.CheckoutSession, error) {
	if stripe.Key == "" {
		return nil, &ConfigurationError{Missing: "STRIPE_SECRET_KEY"}
	}

	offering, ok := LookupPackage(code)
	if !ok {
		return nil, &ValidationError{Field: "packageType", Message: fmt.Sprintf("unknown package %q", code)}
	}
	origin, err := validateOrigin(originURL)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(origin + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/cancel"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(offering.Currency),
					UnitAmount: stripe.Int64(offering.PriceMinorUnits),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(offering.Label),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	// Embed the package and the computed amount for webhook reconciliation.
	params.AddMetadata("packageType", string(offering.Code))
	params.AddMetadata("amount", fmt.Sprintf("%.2f", offering.PriceDecimal()))
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		c.logger.Error("stripe session creation failed",
			zap.String("package", string(code)),
			zap.Int64("amount", offering.PriceMinorUnits),
			zap.Error(err))
		return nil, &UpstreamError{Op: "create checkout session", Err: err}
	}

	c.logger.Info("checkout session created",
		zap.String("sessionId", s.ID),
		zap.String("package", string(code)),
		zap.Int64("amount", offering.PriceMinorUnits))

	result := mapSession(s)
	result.PackageCode = offering.Code
	return result, nil
}

// GetCheckoutSession always queries the provider; it is a read, not a
// cache.
func (c *StripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	if stripe.Key == "" {
		return nil, &ConfigurationError{Missing: "STRIPE_SECRET_KEY"}
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := session.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			if stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == 404 {
				return nil, &NotFoundError{Resource: "checkout session", ID: sessionID}
			}
		}
		return nil, &UpstreamError{Op: "retrieve checkout session", Err: err}
	}
	return mapSession(s), nil
}

func validateOrigin(originURL string) (string, error) {
	if originURL == "" {
		return "", &ValidationError{Field: "originUrl", Message: "must not be empty"}
	}
	u, err := url.Parse(originURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", &ValidationError{Field: "originUrl", Message: "must be an absolute http(s) URL"}
	}
	return strings.TrimRight(originURL, "/"), nil
}

func mapSession(s *stripe.CheckoutSession) *models.CheckoutSession {
	result := &models.CheckoutSession{
		SessionID:     s.ID,
		URL:           s.URL,
		Status:        models.SessionStatus(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.CustomerDetails != nil {
		result.PayerEmail = s.CustomerDetails.Email
	}
	if s.Customer != nil {
		result.PayerEmail = firstNonEmpty(result.PayerEmail, s.Customer.Email)
	}
	if code, ok := s.Metadata["packageType"]; ok {
		result.PackageCode = models.PackageCode(code)
	}
	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
