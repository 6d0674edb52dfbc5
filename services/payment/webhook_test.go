package payment

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const testSigningSecret = "whsec_test_secret"

func completedEventPayload(sessionID string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": %q,
				"object": "checkout.session",
				"amount_total": 5000,
				"currency": "eur",
				"status": "complete",
				"payment_status": "paid",
				"metadata": {"packageType": "duo", "amount": "50.00"},
				"customer_details": {"email": "payer@example.com"}
			}
		}
	}`, sessionID))
}

func signedHeader(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%x", now.Unix(), sig)
}

func TestVerifyMissingSignature(t *testing.T) {
	v := NewStripeWebhookVerifier(testSigningSecret, false, zap.NewNop())

	_, err := v.Verify(completedEventPayload("cs_1"), "")

	var authErr *AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Contains(t, authErr.Error(), "missing signature")
}

func TestVerifySignatureMismatch(t *testing.T) {
	v := NewStripeWebhookVerifier(testSigningSecret, false, zap.NewNop())
	payload := completedEventPayload("cs_1")
	header := signedHeader(t, payload, "whsec_wrong_secret")

	_, err := v.Verify(payload, header)

	var authErr *AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Contains(t, authErr.Error(), "signature mismatch")
}

func TestVerifyTamperedPayload(t *testing.T) {
	v := NewStripeWebhookVerifier(testSigningSecret, false, zap.NewNop())
	payload := completedEventPayload("cs_1")
	header := signedHeader(t, payload, testSigningSecret)
	tampered := completedEventPayload("cs_2")

	_, err := v.Verify(tampered, header)

	var authErr *AuthenticationError
	require.True(t, errors.As(err, &authErr))
}

func TestVerifyValidSignature(t *testing.T) {
	v := NewStripeWebhookVerifier(testSigningSecret, false, zap.NewNop())
	payload := completedEventPayload("cs_signed_1")
	header := signedHeader(t, payload, testSigningSecret)

	event, err := v.Verify(payload, header)
	require.NoError(t, err)

	assert.Equal(t, EventCheckoutCompleted, event.Type)
	require.NotNil(t, event.Session)
	assert.Equal(t, "cs_signed_1", event.Session.SessionID)
	assert.Equal(t, int64(5000), event.Session.AmountTotal)
	assert.Equal(t, "paid", event.Session.PaymentStatus)
	assert.Equal(t, "duo", event.Session.Metadata["packageType"])
	assert.Equal(t, "payer@example.com", event.Session.PayerEmail)
}

// Without a configured secret the verifier is permissive by default so
// local environments work, but the signature header must still be present.
func TestVerifyPermissiveWithoutSecret(t *testing.T) {
	v := NewStripeWebhookVerifier("", false, zap.NewNop())
	payload := completedEventPayload("cs_unverified")

	event, err := v.Verify(payload, "t=1,v1=unverifiable")
	require.NoError(t, err)
	require.NotNil(t, event.Session)
	assert.Equal(t, "cs_unverified", event.Session.SessionID)
}

func TestVerifyStrictWithoutSecret(t *testing.T) {
	v := NewStripeWebhookVerifier("", true, zap.NewNop())
	payload := completedEventPayload("cs_strict")

	_, err := v.Verify(payload, "t=1,v1=unverifiable")

	var configErr *ConfigurationError
	require.True(t, errors.As(err, &configErr))
}

func TestVerifyIgnoresOtherEventTypes(t *testing.T) {
	v := NewStripeWebhookVerifier("", false, zap.NewNop())
	payload := []byte(`{"id": "evt_2", "type": "payment_intent.created", "data": {"object": {"id": "pi_1"}}}`)

	event, err := v.Verify(payload, "t=1,v1=unverifiable")
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.created", event.Type)
	assert.Nil(t, event.Session)
}
