package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
)

// PaymentsOnAccountCalculator derives the advance payment obligation from a
// total liability.
type PaymentsOnAccountCalculator struct {
	rates     *rates.Registry
	deadlines *DeadlineCalculator
}

// NewPaymentsOnAccountCalculator creates a payments-on-account calculator
// backed by a rate registry.
func NewPaymentsOnAccountCalculator(r *rates.Registry) *PaymentsOnAccountCalculator {
	return &PaymentsOnAccountCalculator{rates: r, deadlines: NewDeadlineCalculator()}
}

// Calculate requires two advance payments of half the liability each when the
// liability exceeds the tax year's threshold. Payment dates follow the
// balancing payment and second payment on account deadlines; they are omitted
// when no payment is required.
func (c *PaymentsOnAccountCalculator) Calculate(totalLiability domain.Money, taxYear string) (*domain.PaymentsOnAccountResult, error) {
	if totalLiability < 0 {
		return nil, &domain.ErrValidation{Field: "total liability", Reason: "must not be negative"}
	}
	rt, err := c.rates.Get(taxYear)
	if err != nil {
		return nil, err
	}

	res := &domain.PaymentsOnAccountResult{
		TaxYear:   taxYear,
		Threshold: rt.PaymentsOnAccountThreshold,
	}
	if totalLiability <= rt.PaymentsOnAccountThreshold {
		return res, nil
	}

	deadlines, err := c.deadlines.Calculate(taxYear)
	if err != nil {
		return nil, err
	}

	half := totalLiability.MulRound(decimal.NewFromFloat(0.5))
	res.Required = true
	res.FirstPayment = half
	res.SecondPayment = half
	first := deadlines.BalancingPayment
	second := deadlines.SecondPaymentOnAccount
	res.FirstPaymentDate = &first
	res.SecondPaymentDate = &second
	return res, nil
}
