package models

// PackageCode identifies a server-defined catalog entry. New codes ship
// with a deploy, never with a data migration.
type PackageCode string

const (
	PackageSolo PackageCode = "solo"
	PackageDuo  PackageCode = "duo"
)

// PackageOffering is an immutable catalog entry. The price is resolved
// server-side from the code only; clients never supply an amount.
type PackageOffering struct {
	Code            PackageCode `json:"code"`
	Label           string      `json:"label"`
	PriceMinorUnits int64       `json:"priceMinorUnits"`
	Currency        string      `json:"currency"`
}

// PriceDecimal returns the offering price in major currency units.
func (o PackageOffering) PriceDecimal() float64 {
	return float64(o.PriceMinorUnits) / 100
}
