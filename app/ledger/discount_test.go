package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platforme-educatif/app/models"
)

func TestValidateDiscountRejectsBothKinds(t *testing.T) {
	err := ValidateDiscount(models.AnnualDiscount{Enabled: true, Percentage: 10, Amount: 50})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateDiscountRejectsEmptyEnabled(t *testing.T) {
	err := ValidateDiscount(models.AnnualDiscount{Enabled: true})
	assert.Error(t, err)
}

func TestValidateDiscountAcceptsDisabled(t *testing.T) {
	assert.NoError(t, ValidateDiscount(models.AnnualDiscount{}))
	assert.NoError(t, ValidateDiscount(models.AnnualDiscount{Enabled: true, Percentage: 15}))
	assert.NoError(t, ValidateDiscount(models.AnnualDiscount{Enabled: true, Amount: 75}))
}

func TestApplyDiscountPercentage(t *testing.T) {
	res := ApplyDiscount(100, models.AnnualDiscount{Enabled: true, Percentage: 20})
	assert.Equal(t, 20.0, res.DiscountValue)
	assert.Equal(t, 80.0, res.FinalAmount)
}

func TestApplyDiscountFixedAmountCapped(t *testing.T) {
	res := ApplyDiscount(100, models.AnnualDiscount{Enabled: true, Amount: 150})
	assert.Equal(t, 100.0, res.DiscountValue)
	assert.Zero(t, res.FinalAmount)
}

func TestApplyDiscountDisabledOrZeroAmount(t *testing.T) {
	res := ApplyDiscount(100, models.AnnualDiscount{Percentage: 20})
	assert.Zero(t, res.DiscountValue)
	assert.Equal(t, 100.0, res.FinalAmount)

	res = ApplyDiscount(0, models.AnnualDiscount{Enabled: true, Percentage: 20})
	assert.Zero(t, res.DiscountValue)
	assert.Zero(t, res.FinalAmount)
}
