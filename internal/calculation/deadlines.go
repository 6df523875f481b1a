package calculation

import (
	"time"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/taxyear"
)

// Deadline type tags, in statutory order.
const (
	DeadlineRegistration           = "registration"
	DeadlinePaperReturn            = "paper_return"
	DeadlineOnlineReturn           = "online_return"
	DeadlineBalancingPayment       = "balancing_payment"
	DeadlineSecondPaymentOnAccount = "second_payment_on_account"
)

var deadlineDescriptions = map[string]map[string]string{
	DeadlineRegistration: {
		"en": "Register for Self Assessment",
		"tr": "Self Assessment kaydı için son gün",
	},
	DeadlinePaperReturn: {
		"en": "Submit paper tax return",
		"tr": "Kağıt vergi beyannamesi için son gün",
	},
	DeadlineOnlineReturn: {
		"en": "Submit online tax return",
		"tr": "Online vergi beyannamesi için son gün",
	},
	DeadlineBalancingPayment: {
		"en": "Pay the balance of tax owed",
		"tr": "Kalan vergi borcunun ödenmesi için son gün",
	},
	DeadlineSecondPaymentOnAccount: {
		"en": "Second payment on account",
		"tr": "İkinci peşin ödeme (payment on account) için son gün",
	},
}

// DeadlineCalculator derives the statutory filing and payment dates for a tax
// year.
type DeadlineCalculator struct{}

// NewDeadlineCalculator creates a deadline calculator.
func NewDeadlineCalculator() *DeadlineCalculator {
	return &DeadlineCalculator{}
}

// Calculate resolves the five statutory deadlines that follow a tax year:
// registration by 5 October and the paper return by 31 October of the
// calendar year the tax year ends in, then the online return and balancing
// payment by 31 January and the second payment on account by 31 July of the
// following calendar year.
func (c *DeadlineCalculator) Calculate(taxYearID string) (*domain.DeadlineSet, error) {
	_, end, err := taxyear.Bounds(taxYearID)
	if err != nil {
		return nil, err
	}
	endYear := end.Year()

	set := &domain.DeadlineSet{
		TaxYear:                taxYearID,
		Registration:           time.Date(endYear, time.October, 5, 0, 0, 0, 0, time.UTC),
		PaperReturn:            time.Date(endYear, time.October, 31, 0, 0, 0, 0, time.UTC),
		OnlineReturn:           time.Date(endYear+1, time.January, 31, 0, 0, 0, 0, time.UTC),
		SecondPaymentOnAccount: time.Date(endYear+1, time.July, 31, 0, 0, 0, 0, time.UTC),
	}
	set.BalancingPayment = set.OnlineReturn

	for _, d := range []struct {
		typ  string
		date time.Time
	}{
		{DeadlineRegistration, set.Registration},
		{DeadlinePaperReturn, set.PaperReturn},
		{DeadlineOnlineReturn, set.OnlineReturn},
		{DeadlineBalancingPayment, set.BalancingPayment},
		{DeadlineSecondPaymentOnAccount, set.SecondPaymentOnAccount},
	} {
		set.Deadlines = append(set.Deadlines, domain.Deadline{
			Type:         d.typ,
			Date:         d.date,
			Descriptions: deadlineDescriptions[d.typ],
		})
	}
	return set, nil
}
