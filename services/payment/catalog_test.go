package payment

import (
	"testing"

	"spordate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPackage(t *testing.T) {
	solo, ok := LookupPackage(models.PackageSolo)
	require.True(t, ok)
	assert.Equal(t, int64(2500), solo.PriceMinorUnits)
	assert.Equal(t, "eur", solo.Currency)
	assert.InDelta(t, 25.00, solo.PriceDecimal(), 0.001)

	duo, ok := LookupPackage(models.PackageDuo)
	require.True(t, ok)
	assert.Equal(t, int64(5000), duo.PriceMinorUnits)
	assert.InDelta(t, 50.00, duo.PriceDecimal(), 0.001)
}

func TestLookupPackageUnknown(t *testing.T) {
	_, ok := LookupPackage(models.PackageCode("trio"))
	assert.False(t, ok)

	_, ok = LookupPackage(models.PackageCode(""))
	assert.False(t, ok)
}
