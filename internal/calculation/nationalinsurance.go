package calculation

import (
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
)

// class2Weeks is the number of weekly Class 2 contributions in a full year.
const class2Weeks = 52

// NationalInsuranceCalculator computes Class 2 and Class 4 contributions for
// self-employed profit.
type NationalInsuranceCalculator struct {
	rates *rates.Registry
}

// NewNationalInsuranceCalculator creates an NI calculator backed by a rate
// registry.
func NewNationalInsuranceCalculator(r *rates.Registry) *NationalInsuranceCalculator {
	return &NationalInsuranceCalculator{rates: r}
}

// CalculateClass2 applies the flat weekly rate when profit reaches the Small
// Profits Threshold. The threshold and weekly rate are reported either way.
func (c *NationalInsuranceCalculator) CalculateClass2(profit domain.Money, taxYear string) (*domain.Class2Result, error) {
	if profit < 0 {
		return nil, &domain.ErrValidation{Field: "profit", Reason: "must not be negative"}
	}
	rt, err := c.rates.Get(taxYear)
	if err != nil {
		return nil, err
	}

	res := &domain.Class2Result{
		WeeklyRate:            rt.Class2WeeklyRate,
		Weeks:                 class2Weeks,
		SmallProfitsThreshold: rt.SmallProfitsThreshold,
	}
	if profit >= rt.SmallProfitsThreshold {
		res.Liable = true
		res.AnnualAmount = rt.Class2WeeklyRate * class2Weeks
	}
	return res, nil
}

// CalculateClass4 applies the main rate between the Lower and Upper Profits
// Limits and the additional rate above the upper limit. Each component is
// rounded to the nearest penny independently; only non-zero components appear
// in the breakdown.
func (c *NationalInsuranceCalculator) CalculateClass4(profit domain.Money, taxYear string) (*domain.Class4Result, error) {
	if profit < 0 {
		return nil, &domain.ErrValidation{Field: "profit", Reason: "must not be negative"}
	}
	rt, err := c.rates.Get(taxYear)
	if err != nil {
		return nil, err
	}

	res := &domain.Class4Result{
		LowerLimit:     rt.Class4LowerLimit,
		UpperLimit:     rt.Class4UpperLimit,
		MainRate:       rt.Class4MainRate,
		AdditionalRate: rt.Class4AdditionalRate,
	}

	mainProfit := profit
	if mainProfit > rt.Class4UpperLimit {
		mainProfit = rt.Class4UpperLimit
	}
	mainProfit -= rt.Class4LowerLimit
	if mainProfit < 0 {
		mainProfit = 0
	}
	if mainProfit > 0 {
		res.MainAmount = mainProfit.MulRound(rt.Class4MainRate)
		res.Bands = append(res.Bands, domain.Class4BandContribution{
			Name:   "main",
			Rate:   rt.Class4MainRate,
			Profit: mainProfit,
			Amount: res.MainAmount,
		})
	}

	if profit > rt.Class4UpperLimit {
		additionalProfit := profit - rt.Class4UpperLimit
		res.AdditionalAmount = additionalProfit.MulRound(rt.Class4AdditionalRate)
		res.Bands = append(res.Bands, domain.Class4BandContribution{
			Name:   "additional",
			Rate:   rt.Class4AdditionalRate,
			Profit: additionalProfit,
			Amount: res.AdditionalAmount,
		})
	}

	res.Total = res.MainAmount + res.AdditionalAmount
	return res, nil
}

// Calculate combines both classes into the full NI position.
func (c *NationalInsuranceCalculator) Calculate(profit domain.Money, taxYear string) (*domain.NationalInsuranceResult, error) {
	class2, err := c.CalculateClass2(profit, taxYear)
	if err != nil {
		return nil, err
	}
	class4, err := c.CalculateClass4(profit, taxYear)
	if err != nil {
		return nil, err
	}
	return &domain.NationalInsuranceResult{
		TaxYear: taxYear,
		Profit:  profit,
		Class2:  *class2,
		Class4:  *class4,
		Total:   class2.AnnualAmount + class4.Total,
	}, nil
}
