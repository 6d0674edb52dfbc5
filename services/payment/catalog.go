package payment

import "spordate/models"

// catalog is the server-side price table. It is the only source of charge
// amounts: a client-supplied amount is never used.
var catalog = map[models.PackageCode]models.PackageOffering{
	models.PackageSolo: {
		Code:            models.PackageSolo,
		Label:           "Spordate Solo",
		PriceMinorUnits: 2500,
		Currency:        "eur",
	},
	models.PackageDuo: {
		Code:            models.PackageDuo,
		Label:           "Spordate Duo",
		PriceMinorUnits: 5000,
		Currency:        "eur",
	},
}

// LookupPackage resolves a catalog entry from its code.
func LookupPackage(code models.PackageCode) (models.PackageOffering, bool) {
	offering, ok := catalog[code]
	return offering, ok
}
