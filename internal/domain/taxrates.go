package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBand is one marginal income tax band. UpperBound is the cumulative
// boundary measured from zero taxable income, in pence; zero means the band
// is unbounded and must be last. Band widths are fixed per tax year and do
// not shrink when the personal allowance tapers.
type TaxBand struct {
	Name       string          `yaml:"name" json:"name"`
	UpperBound Money           `yaml:"upper_bound" json:"upper_bound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// RateTable bundles every statutory constant for one tax year. Instances are
// registered once and read-only thereafter.
type RateTable struct {
	TaxYear string `yaml:"tax_year" json:"tax_year"`

	// Personal allowance and its taper. TaperRate is the reduction per penny
	// of income over the threshold (0.5 for the "£1 per £2" rule).
	PersonalAllowance Money           `yaml:"personal_allowance" json:"personal_allowance"`
	TaperThreshold    Money           `yaml:"taper_threshold" json:"taper_threshold"`
	TaperRate         decimal.Decimal `yaml:"taper_rate" json:"taper_rate"`

	Bands []TaxBand `yaml:"bands" json:"bands"`

	// Class 2 National Insurance.
	Class2WeeklyRate      Money `yaml:"class2_weekly_rate" json:"class2_weekly_rate"`
	SmallProfitsThreshold Money `yaml:"small_profits_threshold" json:"small_profits_threshold"`

	// Class 4 National Insurance.
	Class4LowerLimit     Money           `yaml:"class4_lower_limit" json:"class4_lower_limit"`
	Class4UpperLimit     Money           `yaml:"class4_upper_limit" json:"class4_upper_limit"`
	Class4MainRate       decimal.Decimal `yaml:"class4_main_rate" json:"class4_main_rate"`
	Class4AdditionalRate decimal.Decimal `yaml:"class4_additional_rate" json:"class4_additional_rate"`

	PaymentsOnAccountThreshold Money `yaml:"payments_on_account_threshold" json:"payments_on_account_threshold"`
}

// Validate checks the table's internal consistency: band boundaries strictly
// increasing, exactly one unbounded final band, Class 4 limits ordered.
func (rt *RateTable) Validate() error {
	if rt.TaxYear == "" {
		return fmt.Errorf("rate table: tax year is required")
	}
	if rt.PersonalAllowance < 0 || rt.TaperThreshold < 0 {
		return fmt.Errorf("rate table %s: allowance amounts must not be negative", rt.TaxYear)
	}
	if rt.TaperRate.IsNegative() {
		return fmt.Errorf("rate table %s: taper rate must not be negative", rt.TaxYear)
	}
	if len(rt.Bands) == 0 {
		return fmt.Errorf("rate table %s: at least one tax band is required", rt.TaxYear)
	}
	prev := Money(0)
	for i, b := range rt.Bands {
		last := i == len(rt.Bands)-1
		if b.UpperBound == 0 && !last {
			return fmt.Errorf("rate table %s: band %q: only the final band may be unbounded", rt.TaxYear, b.Name)
		}
		if b.UpperBound != 0 && b.UpperBound <= prev {
			return fmt.Errorf("rate table %s: band %q: upper bound %s not above previous bound %s",
				rt.TaxYear, b.Name, b.UpperBound, prev)
		}
		if b.Rate.IsNegative() {
			return fmt.Errorf("rate table %s: band %q: rate must not be negative", rt.TaxYear, b.Name)
		}
		if b.UpperBound != 0 {
			prev = b.UpperBound
		}
	}
	if rt.Bands[len(rt.Bands)-1].UpperBound != 0 {
		return fmt.Errorf("rate table %s: final band must be unbounded", rt.TaxYear)
	}
	if rt.Class4UpperLimit <= rt.Class4LowerLimit {
		return fmt.Errorf("rate table %s: class 4 upper limit %s not above lower limit %s",
			rt.TaxYear, rt.Class4UpperLimit, rt.Class4LowerLimit)
	}
	if rt.Class2WeeklyRate < 0 || rt.SmallProfitsThreshold < 0 || rt.PaymentsOnAccountThreshold < 0 {
		return fmt.Errorf("rate table %s: NI and payment thresholds must not be negative", rt.TaxYear)
	}
	return nil
}
