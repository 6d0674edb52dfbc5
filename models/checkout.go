package models

// SessionStatus mirrors the provider-side lifecycle of a checkout session.
// The session is owned by the payment provider; the application only reads
// its status, it never mutates it.
type SessionStatus string

const (
	SessionOpen     SessionStatus = "open"
	SessionComplete SessionStatus = "complete"
	SessionExpired  SessionStatus = "expired"
)

// CheckoutRequest is the client body for starting a purchase. The amount is
// deliberately absent: it is looked up from the catalog by package type.
type CheckoutRequest struct {
	PackageType string            `json:"packageType"`
	OriginURL   string            `json:"originUrl"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// CheckoutSession is the application's view of one provider-hosted payment
// attempt, identified by an opaque provider-issued ID.
type CheckoutSession struct {
	SessionID     string            `json:"sessionId"`
	URL           string            `json:"url,omitempty"`
	PackageCode   PackageCode       `json:"packageCode,omitempty"`
	Status        SessionStatus     `json:"status"`
	PaymentStatus string            `json:"paymentStatus,omitempty"`
	AmountTotal   int64             `json:"amountTotal"`
	Currency      string            `json:"currency,omitempty"`
	PayerEmail    string            `json:"payerEmail,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// PaymentEvent is a verified provider notification. Session is populated
// only for checkout.session events; other event types carry the type alone.
type PaymentEvent struct {
	ID      string           `json:"id"`
	Type    string           `json:"type"`
	Session *CheckoutSession `json:"session,omitempty"`
}
