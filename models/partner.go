package models

// PartnerType categorizes a venue.
type PartnerType string

const (
	PartnerSalle       PartnerType = "Salle"
	PartnerStudio      PartnerType = "Studio"
	PartnerClub        PartnerType = "Club"
	PartnerAssociation PartnerType = "Association"
)

// Partner is a venue record. The checkout/booking flow reads partners only;
// venue management owns writes and lives outside this core.
type Partner struct {
	ID         string      `bson:"id" json:"id"`
	Name       string      `bson:"name" json:"name"`
	Address    string      `bson:"address" json:"address"`
	City       string      `bson:"city" json:"city"`
	Type       PartnerType `bson:"type" json:"type"`
	Email      string      `bson:"email,omitempty" json:"email,omitempty"`
	ReferralID string      `bson:"referral_id" json:"referralId"`
	Active     bool        `bson:"active" json:"active"`
}
