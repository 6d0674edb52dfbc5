package models

import "time"

// Booking status values. Only CONFIRMED bookings exist today; CANCELLED is
// reserved for a future cancellation flow.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
)

// Backend reports which persistence path served a write.
type Backend string

const (
	BackendPrimary  Backend = "primary"
	BackendFallback Backend = "fallback"
)

// Booking is the durable record of a confirmed purchase. SessionID is the
// deduplication key: one booking per completed checkout session, no matter
// how many times the provider delivers the completion event.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	SessionID   string    `bson:"session_id" json:"sessionId"`
	PayerID     string    `bson:"payer_id" json:"payerId"`
	PayerEmail  string    `bson:"payer_email,omitempty" json:"payerEmail,omitempty"`
	ProfileID   int       `bson:"profile_id" json:"profileId"`
	ProfileName string    `bson:"profile_name" json:"profileName"`
	PartnerID   string    `bson:"partner_id,omitempty" json:"partnerId,omitempty"`
	PackageCode string    `bson:"package_code" json:"packageCode"`
	Amount      float64   `bson:"amount" json:"amount"`
	Currency    string    `bson:"currency" json:"currency"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// GlobalStats is the singleton aggregate updated alongside each booking
// insert. TotalRevenue equals the seed baseline plus the sum of confirmed
// booking amounts; TotalBookings counts confirmed bookings.
type GlobalStats struct {
	TotalRevenue  float64   `bson:"total_revenue" json:"totalRevenue"`
	TotalBookings int64     `bson:"total_bookings" json:"totalBookings"`
	LastUpdated   time.Time `bson:"last_updated" json:"lastUpdated"`
}

// RecordOutcome is what a booking repository returns from a record attempt.
type RecordOutcome struct {
	Booking         *Booking
	TotalRevenue    float64
	AlreadyRecorded bool
}

// RecordResult is the recorder's answer, including which backend took the
// write so callers can surface sync confidence without blocking the flow.
type RecordResult struct {
	Booking         *Booking `json:"booking"`
	TotalRevenue    float64  `json:"totalRevenue"`
	Backend         Backend  `json:"backend"`
	AlreadyRecorded bool     `json:"alreadyRecorded"`
}
