package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
)

// IncomeTaxCalculator walks the marginal bands for a tax year. Band
// boundaries are cumulative from zero taxable income and do not move when the
// personal allowance tapers.
type IncomeTaxCalculator struct {
	rates     *rates.Registry
	allowance *AllowanceCalculator
}

// NewIncomeTaxCalculator creates an income tax calculator backed by a rate
// registry.
func NewIncomeTaxCalculator(r *rates.Registry) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{rates: r, allowance: NewAllowanceCalculator(r)}
}

// Calculate splits taxable income across the bands in order and sums the tax
// owed. Each band's tax is rounded to the nearest penny independently, so the
// total carries the accumulated per-band rounding rather than a single-shot
// rounding of the grand total.
func (c *IncomeTaxCalculator) Calculate(grossIncome domain.Money, taxYear string) (*domain.IncomeTaxResult, error) {
	if grossIncome < 0 {
		return nil, &domain.ErrValidation{Field: "gross income", Reason: "must not be negative"}
	}
	rt, err := c.rates.Get(taxYear)
	if err != nil {
		return nil, err
	}
	allowance, err := c.allowance.Calculate(grossIncome, taxYear)
	if err != nil {
		return nil, err
	}

	taxable := grossIncome - allowance.Adjusted
	if taxable < 0 {
		taxable = 0
	}

	var contributions []domain.BandContribution
	var totalTax domain.Money
	lower := domain.Money(0)
	for _, band := range rt.Bands {
		if taxable <= lower {
			break
		}
		upper := taxable
		if band.UpperBound != 0 && band.UpperBound < upper {
			upper = band.UpperBound
		}
		amount := upper - lower
		if amount <= 0 {
			continue
		}
		tax := amount.MulRound(band.Rate)
		contributions = append(contributions, domain.BandContribution{
			Name:        band.Name,
			Rate:        band.Rate,
			AmountTaxed: amount,
			Tax:         tax,
		})
		totalTax += tax
		lower = band.UpperBound
	}

	effectiveRate := decimal.Zero
	if grossIncome > 0 {
		effectiveRate = decimal.NewFromInt(int64(totalTax)).
			Div(decimal.NewFromInt(int64(grossIncome))).
			Round(4)
	}

	return &domain.IncomeTaxResult{
		TaxYear:       taxYear,
		GrossIncome:   grossIncome,
		Allowance:     allowance.Adjusted,
		TaxableIncome: taxable,
		Bands:         contributions,
		TotalTax:      totalTax,
		EffectiveRate: effectiveRate,
	}, nil
}
