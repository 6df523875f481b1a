package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTable() *RateTable {
	return &RateTable{
		TaxYear:           "2025-26",
		PersonalAllowance: 1_257_000,
		TaperThreshold:    10_000_000,
		TaperRate:         decimal.NewFromFloat(0.5),
		Bands: []TaxBand{
			{Name: "basic", UpperBound: 3_770_000, Rate: decimal.NewFromFloat(0.20)},
			{Name: "higher", UpperBound: 7_487_000, Rate: decimal.NewFromFloat(0.40)},
			{Name: "additional", UpperBound: 0, Rate: decimal.NewFromFloat(0.45)},
		},
		Class2WeeklyRate:           345,
		SmallProfitsThreshold:      672_500,
		Class4LowerLimit:           1_257_000,
		Class4UpperLimit:           5_027_000,
		Class4MainRate:             decimal.NewFromFloat(0.06),
		Class4AdditionalRate:       decimal.NewFromFloat(0.02),
		PaymentsOnAccountThreshold: 100_000,
	}
}

func TestRateTableValidate(t *testing.T) {
	assert.NoError(t, validTable().Validate())
}

func TestRateTableValidate_MissingTaxYear(t *testing.T) {
	rt := validTable()
	rt.TaxYear = ""
	assert.Error(t, rt.Validate())
}

func TestRateTableValidate_BandsNotIncreasing(t *testing.T) {
	rt := validTable()
	rt.Bands[1].UpperBound = 3_770_000 // equal to previous bound
	err := rt.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not above previous bound")
}

func TestRateTableValidate_UnboundedBandNotLast(t *testing.T) {
	rt := validTable()
	rt.Bands[0].UpperBound = 0
	err := rt.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "only the final band may be unbounded")
}

func TestRateTableValidate_FinalBandMustBeUnbounded(t *testing.T) {
	rt := validTable()
	rt.Bands[2].UpperBound = 9_000_000
	err := rt.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "final band must be unbounded")
}

func TestRateTableValidate_NoBands(t *testing.T) {
	rt := validTable()
	rt.Bands = nil
	assert.Error(t, rt.Validate())
}

func TestRateTableValidate_Class4LimitsOrdered(t *testing.T) {
	rt := validTable()
	rt.Class4UpperLimit = rt.Class4LowerLimit
	err := rt.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "class 4 upper limit")
}

func TestRateTableValidate_NegativeRate(t *testing.T) {
	rt := validTable()
	rt.Bands[0].Rate = decimal.NewFromFloat(-0.1)
	assert.Error(t, rt.Validate())
}
