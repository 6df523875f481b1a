package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

func TestPaymentsOnAccount_Required(t *testing.T) {
	calc := NewPaymentsOnAccountCalculator(newTestRegistry())

	// £2,000 liability: two payments of £1,000 each.
	res, err := calc.Calculate(200_000, testYear)
	require.NoError(t, err)
	assert.True(t, res.Required)
	assert.Equal(t, domain.Money(100_000), res.FirstPayment)
	assert.Equal(t, domain.Money(100_000), res.SecondPayment)
	require.NotNil(t, res.FirstPaymentDate)
	require.NotNil(t, res.SecondPaymentDate)
	assert.Equal(t, time.Date(2027, time.January, 31, 0, 0, 0, 0, time.UTC), *res.FirstPaymentDate)
	assert.Equal(t, time.Date(2027, time.July, 31, 0, 0, 0, 0, time.UTC), *res.SecondPaymentDate)
}

func TestPaymentsOnAccount_NotRequiredAtThreshold(t *testing.T) {
	calc := NewPaymentsOnAccountCalculator(newTestRegistry())

	// Exactly £1,000 does not exceed the threshold.
	res, err := calc.Calculate(100_000, testYear)
	require.NoError(t, err)
	assert.False(t, res.Required)
	assert.Equal(t, domain.Money(0), res.FirstPayment)
	assert.Nil(t, res.FirstPaymentDate)
	assert.Nil(t, res.SecondPaymentDate)
}

func TestPaymentsOnAccount_NotRequiredBelowThreshold(t *testing.T) {
	calc := NewPaymentsOnAccountCalculator(newTestRegistry())

	res, err := calc.Calculate(80_000, testYear)
	require.NoError(t, err)
	assert.False(t, res.Required)
	assert.Equal(t, domain.Money(100_000), res.Threshold)
}

func TestPaymentsOnAccount_OddPennyRoundsHalf(t *testing.T) {
	calc := NewPaymentsOnAccountCalculator(newTestRegistry())

	// £1,000.01 halves to 50000.5p; half-up rounding gives £500.01.
	res, err := calc.Calculate(100_001, testYear)
	require.NoError(t, err)
	assert.True(t, res.Required)
	assert.Equal(t, domain.Money(50_001), res.FirstPayment)
}

func TestPaymentsOnAccount_NegativeLiabilityRejected(t *testing.T) {
	calc := NewPaymentsOnAccountCalculator(newTestRegistry())

	_, err := calc.Calculate(-1, testYear)
	var validation *domain.ErrValidation
	assert.ErrorAs(t, err, &validation)
}

func TestPaymentsOnAccount_UnknownTaxYear(t *testing.T) {
	calc := NewPaymentsOnAccountCalculator(newTestRegistry())

	_, err := calc.Calculate(200_000, "2050-51")
	var unknown *domain.ErrUnknownTaxYear
	assert.ErrorAs(t, err, &unknown)
}
