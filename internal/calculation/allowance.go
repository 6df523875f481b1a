// Package calculation implements the self-assessment tax and National
// Insurance calculators. Every calculator is a pure function of its inputs
// and the rate table for the resolved tax year; nothing here performs I/O.
package calculation

import (
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
)

// AllowanceCalculator computes the tapered personal allowance.
type AllowanceCalculator struct {
	rates *rates.Registry
}

// NewAllowanceCalculator creates an allowance calculator backed by a rate
// registry.
func NewAllowanceCalculator(r *rates.Registry) *AllowanceCalculator {
	return &AllowanceCalculator{rates: r}
}

// Calculate applies the taper: £1 of allowance lost per £2 of income over the
// threshold, with the reduction floored to whole pence and capped at the base
// allowance. The adjusted allowance is never negative.
func (c *AllowanceCalculator) Calculate(grossIncome domain.Money, taxYear string) (*domain.PersonalAllowanceResult, error) {
	if grossIncome < 0 {
		return nil, &domain.ErrValidation{Field: "gross income", Reason: "must not be negative"}
	}
	rt, err := c.rates.Get(taxYear)
	if err != nil {
		return nil, err
	}

	reduction := domain.Money(0)
	if grossIncome > rt.TaperThreshold {
		excess := grossIncome - rt.TaperThreshold
		reduction = excess.MulFloor(rt.TaperRate)
		if reduction > rt.PersonalAllowance {
			reduction = rt.PersonalAllowance
		}
	}

	return &domain.PersonalAllowanceResult{
		TaxYear:   taxYear,
		Base:      rt.PersonalAllowance,
		Reduction: reduction,
		Adjusted:  rt.PersonalAllowance - reduction,
	}, nil
}
