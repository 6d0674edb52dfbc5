package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spordate/models"
	"spordate/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPaymentClient struct {
	createCalls int
	session     *models.CheckoutSession
	createErr   error
	getCalls    int
	getSession  *models.CheckoutSession
	getErr      error
}

func (s *stubPaymentClient) CreateCheckoutSession(_ context.Context, code models.PackageCode, originURL string, _ map[string]string) (*models.CheckoutSession, error) {
	if _, ok := payment.LookupPackage(code); !ok {
		return nil, &payment.ValidationError{Field: "packageType", Message: "unknown package"}
	}
	if originURL == "" {
		return nil, &payment.ValidationError{Field: "originUrl", Message: "must not be empty"}
	}
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.createCalls++
	return s.session, nil
}

func (s *stubPaymentClient) GetCheckoutSession(context.Context, string) (*models.CheckoutSession, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.getSession, nil
}

func checkoutRouter(client payment.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCheckoutHandler(client, nil, zap.NewNop())
	r := gin.New()
	r.POST("/checkout", h.CreateCheckoutHandler)
	r.GET("/checkout/status/:sessionID", h.CheckoutStatusHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCheckout(t *testing.T) {
	client := &stubPaymentClient{session: &models.CheckoutSession{
		SessionID: "cs_test_1",
		URL:       "https://checkout.stripe.com/pay/cs_test_1",
		Status:    models.SessionOpen,
	}}
	r := checkoutRouter(client)

	w := postJSON(t, r, "/checkout", models.CheckoutRequest{
		PackageType: "duo",
		OriginURL:   "https://app.example",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cs_test_1", resp["sessionId"])
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_1", resp["url"])
	assert.Equal(t, 1, client.createCalls)
}

// An unknown package is a 400 and must never reach the provider.
func TestCreateCheckoutUnknownPackage(t *testing.T) {
	client := &stubPaymentClient{}
	r := checkoutRouter(client)

	w := postJSON(t, r, "/checkout", models.CheckoutRequest{
		PackageType: "premium",
		OriginURL:   "https://app.example",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, client.createCalls)
}

func TestCreateCheckoutMissingOrigin(t *testing.T) {
	client := &stubPaymentClient{}
	r := checkoutRouter(client)

	w := postJSON(t, r, "/checkout", models.CheckoutRequest{PackageType: "solo"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, client.createCalls)
}

func TestCreateCheckoutMalformedBody(t *testing.T) {
	client := &stubPaymentClient{}
	r := checkoutRouter(client)

	req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, client.createCalls)
}

func TestCreateCheckoutProviderNotConfigured(t *testing.T) {
	client := &stubPaymentClient{createErr: &payment.ConfigurationError{Missing: "STRIPE_SECRET_KEY"}}
	r := checkoutRouter(client)

	w := postJSON(t, r, "/checkout", models.CheckoutRequest{
		PackageType: "solo",
		OriginURL:   "https://app.example",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCheckoutStatus(t *testing.T) {
	client := &stubPaymentClient{getSession: &models.CheckoutSession{
		SessionID:     "cs_test_2",
		Status:        models.SessionComplete,
		PaymentStatus: "paid",
		AmountTotal:   2500,
		Currency:      "eur",
		Metadata:      map[string]string{"packageType": "solo"},
	}}
	r := checkoutRouter(client)

	req := httptest.NewRequest(http.MethodGet, "/checkout/status/cs_test_2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status        string            `json:"status"`
		PaymentStatus string            `json:"paymentStatus"`
		AmountTotal   int64             `json:"amountTotal"`
		Currency      string            `json:"currency"`
		Metadata      map[string]string `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "complete", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, int64(2500), resp.AmountTotal)
	assert.Equal(t, "solo", resp.Metadata["packageType"])
}

func TestCheckoutStatusUnknownSession(t *testing.T) {
	client := &stubPaymentClient{getErr: &payment.NotFoundError{Resource: "checkout session", ID: "cs_missing"}}
	r := checkoutRouter(client)

	req := httptest.NewRequest(http.MethodGet, "/checkout/status/cs_missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
