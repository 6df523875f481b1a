package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod is the resolved date range a report covers, together with the
// tax year governing rate lookups. A period may span only part of a tax year;
// rates are always selected from the tax year of the start date.
type ReportPeriod struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	TaxYear string    `json:"tax_year"`
}

// LedgerSummary is the aggregate the external ledger collaborator returns for
// a date range. NetProfit may be negative (a loss); it is floored to zero
// before entering any calculator.
type LedgerSummary struct {
	Income    Money `json:"income"`
	Expenses  Money `json:"expenses"`
	NetProfit Money `json:"net_profit"`
}

// PersonalAllowanceResult describes the tapered personal allowance for a
// gross income figure.
type PersonalAllowanceResult struct {
	TaxYear   string `json:"tax_year"`
	Base      Money  `json:"base"`
	Reduction Money  `json:"reduction"`
	Adjusted  Money  `json:"adjusted"`
}

// BandContribution is one income tax band's share of the liability. Bands
// with nothing taxed in them do not appear in a breakdown.
type BandContribution struct {
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	AmountTaxed Money           `json:"amount_taxed"`
	Tax         Money           `json:"tax"`
}

// IncomeTaxResult is the full income tax position for a gross income figure.
type IncomeTaxResult struct {
	TaxYear       string             `json:"tax_year"`
	GrossIncome   Money              `json:"gross_income"`
	Allowance     Money              `json:"personal_allowance"`
	TaxableIncome Money              `json:"taxable_income"`
	Bands         []BandContribution `json:"bands"`
	TotalTax      Money              `json:"total_tax"`
	EffectiveRate decimal.Decimal    `json:"effective_rate"`
}

// Class2Result holds the flat-rate Class 2 NI position. Threshold and weekly
// rate are reported whether or not the profit is liable.
type Class2Result struct {
	Liable                bool  `json:"liable"`
	WeeklyRate            Money `json:"weekly_rate"`
	Weeks                 int   `json:"weeks"`
	AnnualAmount          Money `json:"annual_amount"`
	SmallProfitsThreshold Money `json:"small_profits_threshold"`
}

// Class4BandContribution is one non-zero Class 4 component.
type Class4BandContribution struct {
	Name   string          `json:"name"`
	Rate   decimal.Decimal `json:"rate"`
	Profit Money           `json:"profit"`
	Amount Money           `json:"amount"`
}

// Class4Result holds the two-tier Class 4 NI position.
type Class4Result struct {
	MainAmount       Money                    `json:"main_amount"`
	AdditionalAmount Money                    `json:"additional_amount"`
	Total            Money                    `json:"total"`
	LowerLimit       Money                    `json:"lower_limit"`
	UpperLimit       Money                    `json:"upper_limit"`
	MainRate         decimal.Decimal          `json:"main_rate"`
	AdditionalRate   decimal.Decimal          `json:"additional_rate"`
	Bands            []Class4BandContribution `json:"bands,omitempty"`
}

// NationalInsuranceResult combines both self-employed NI classes.
type NationalInsuranceResult struct {
	TaxYear string       `json:"tax_year"`
	Profit  Money        `json:"profit"`
	Class2  Class2Result `json:"class2"`
	Class4  Class4Result `json:"class4"`
	Total   Money        `json:"total"`
}

// Deadline is one statutory date with per-language descriptions. The
// description map always carries at least "en" and "tr".
type Deadline struct {
	Type         string            `json:"type"`
	Date         time.Time         `json:"date"`
	Descriptions map[string]string `json:"descriptions"`
}

// DeadlineSet carries the statutory dates for one tax year, both as discrete
// fields and as an ordered sequence.
type DeadlineSet struct {
	TaxYear                string     `json:"tax_year"`
	Registration           time.Time  `json:"registration"`
	PaperReturn            time.Time  `json:"paper_return"`
	OnlineReturn           time.Time  `json:"online_return"`
	BalancingPayment       time.Time  `json:"balancing_payment"`
	SecondPaymentOnAccount time.Time  `json:"second_payment_on_account"`
	Deadlines              []Deadline `json:"deadlines"`
}

// PaymentsOnAccountResult describes the advance payment obligation derived
// from a total liability. Dates are nil when no payments are required.
type PaymentsOnAccountResult struct {
	TaxYear           string     `json:"tax_year"`
	Required          bool       `json:"required"`
	Threshold         Money      `json:"threshold"`
	FirstPayment      Money      `json:"first_payment"`
	SecondPayment     Money      `json:"second_payment"`
	FirstPaymentDate  *time.Time `json:"first_payment_date,omitempty"`
	SecondPaymentDate *time.Time `json:"second_payment_date,omitempty"`
}

// ReportSummary is the headline liability position.
type ReportSummary struct {
	TotalTaxLiability Money `json:"total_tax_liability"`
	// TakeHome is net profit minus total liability. Not floored: a loss-making
	// period reports a negative take-home.
	TakeHome Money `json:"take_home"`
}

// SelfAssessmentReport is the full output of one report computation.
type SelfAssessmentReport struct {
	AccountKey        string                  `json:"account_key"`
	Period            ReportPeriod            `json:"period"`
	Ledger            LedgerSummary           `json:"ledger"`
	IncomeTax         IncomeTaxResult         `json:"income_tax"`
	NationalInsurance NationalInsuranceResult `json:"national_insurance"`
	Deadlines         DeadlineSet             `json:"deadlines"`
	PaymentsOnAccount PaymentsOnAccountResult `json:"payments_on_account"`
	Summary           ReportSummary           `json:"summary"`
}
