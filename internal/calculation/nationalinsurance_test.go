package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

func TestClass2_LiableAtThreshold(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	// Profit exactly at the Small Profits Threshold is liable.
	res, err := calc.CalculateClass2(672_500, testYear)
	require.NoError(t, err)
	assert.True(t, res.Liable)
	assert.Equal(t, 52, res.Weeks)
	assert.Equal(t, domain.Money(17_940), res.AnnualAmount, "52 weeks at £3.45")
}

func TestClass2_NotLiableBelowThreshold(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	res, err := calc.CalculateClass2(672_499, testYear)
	require.NoError(t, err)
	assert.False(t, res.Liable)
	assert.Equal(t, domain.Money(0), res.AnnualAmount)
	// Threshold and rate are reported either way.
	assert.Equal(t, domain.Money(672_500), res.SmallProfitsThreshold)
	assert.Equal(t, domain.Money(345), res.WeeklyRate)
}

func TestClass4_BelowLowerLimit(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	res, err := calc.CalculateClass4(1_257_000, testYear)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(0), res.Total)
	assert.Empty(t, res.Bands, "no contribution entries below the lower limit")
}

func TestClass4_MainRateOnly(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	// £30,000 profit: £17,430 at 6% = £1,045.80.
	res, err := calc.CalculateClass4(3_000_000, testYear)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(104_580), res.MainAmount)
	assert.Equal(t, domain.Money(0), res.AdditionalAmount)
	require.Len(t, res.Bands, 1)
	assert.Equal(t, "main", res.Bands[0].Name)
}

func TestClass4_TwoTierExample(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	// £60,000 profit: £37,700 at 6% = £2,262.00, £9,730 at 2% = £194.60.
	res, err := calc.CalculateClass4(6_000_000, testYear)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(226_200), res.MainAmount)
	assert.Equal(t, domain.Money(19_460), res.AdditionalAmount)
	assert.Equal(t, domain.Money(245_660), res.Total)
	require.Len(t, res.Bands, 2)
	assert.Equal(t, "main", res.Bands[0].Name)
	assert.Equal(t, "additional", res.Bands[1].Name)
	assert.Equal(t, domain.Money(973_000), res.Bands[1].Profit)
}

func TestNI_Combined(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	res, err := calc.Calculate(3_000_000, testYear)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(17_940), res.Class2.AnnualAmount)
	assert.Equal(t, domain.Money(104_580), res.Class4.Total)
	assert.Equal(t, domain.Money(122_520), res.Total)
}

func TestNI_Monotonic(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	prev := domain.Money(0)
	for profit := domain.Money(0); profit <= 10_000_000; profit += 98_765 {
		res, err := calc.Calculate(profit, testYear)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Total, prev,
			"NI must not decrease as profit rises (profit %s)", profit)
		prev = res.Total
	}
}

func TestNI_RateVariesByTaxYear(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	// 2023-24 used a 9% main rate; same profit, higher contribution.
	current, err := calc.CalculateClass4(3_000_000, "2025-26")
	require.NoError(t, err)
	older, err := calc.CalculateClass4(3_000_000, "2023-24")
	require.NoError(t, err)
	assert.Equal(t, domain.Money(104_580), current.MainAmount)
	assert.Equal(t, domain.Money(156_870), older.MainAmount)
}

func TestNI_UnknownTaxYear(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	_, err := calc.Calculate(3_000_000, "2040-41")
	var unknown *domain.ErrUnknownTaxYear
	assert.ErrorAs(t, err, &unknown)
}

func TestNI_NegativeProfitRejected(t *testing.T) {
	calc := NewNationalInsuranceCalculator(newTestRegistry())

	_, err := calc.Calculate(-100, testYear)
	var validation *domain.ErrValidation
	assert.ErrorAs(t, err, &validation)
}
