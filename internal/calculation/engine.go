package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/rates"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/taxyear"
)

// Logger is the minimal logging interface the engine depends on.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output. It is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// LedgerAggregator is the engine's only external collaborator. It sums the
// non-voided income and expense entries of an account over an inclusive date
// range. A failure here aborts the whole report; the engine never retries.
type LedgerAggregator interface {
	NetProfit(ctx context.Context, accountKey string, start, end time.Time) (*domain.LedgerSummary, error)
}

// Engine builds self-assessment reports. All calculators share one immutable
// rate registry, so concurrent report computations need no synchronisation.
type Engine struct {
	Rates     *rates.Registry
	Ledger    LedgerAggregator
	Allowance *AllowanceCalculator
	IncomeTax *IncomeTaxCalculator
	NI        *NationalInsuranceCalculator
	Deadlines *DeadlineCalculator
	Payments  *PaymentsOnAccountCalculator
	Logger    Logger
}

// NewEngine creates a report engine over a rate registry and a ledger
// collaborator.
func NewEngine(r *rates.Registry, ledger LedgerAggregator) *Engine {
	return &Engine{
		Rates:     r,
		Ledger:    ledger,
		Allowance: NewAllowanceCalculator(r),
		IncomeTax: NewIncomeTaxCalculator(r),
		NI:        NewNationalInsuranceCalculator(r),
		Deadlines: NewDeadlineCalculator(),
		Payments:  NewPaymentsOnAccountCalculator(r),
		Logger:    NopLogger{},
	}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// GenerateForDateRange builds a report for an arbitrary date range given in
// YYYY-MM-DD form. The tax year of the start date governs rate selection; a
// range is assumed not to straddle two tax years for lookup purposes.
func (e *Engine) GenerateForDateRange(ctx context.Context, accountKey, startStr, endStr string) (*domain.SelfAssessmentReport, error) {
	start, end, err := taxyear.ValidateDateRange(startStr, endStr)
	if err != nil {
		return nil, err
	}
	return e.generate(ctx, accountKey, start, end)
}

// GenerateForTaxYear builds a report covering a full tax year.
func (e *Engine) GenerateForTaxYear(ctx context.Context, accountKey, taxYearID string) (*domain.SelfAssessmentReport, error) {
	start, end, err := taxyear.Bounds(taxYearID)
	if err != nil {
		return nil, err
	}
	return e.generate(ctx, accountKey, start, end)
}

// GenerateForMonth builds a report for one calendar month.
func (e *Engine) GenerateForMonth(ctx context.Context, accountKey string, year, month int) (*domain.SelfAssessmentReport, error) {
	if month < 1 || month > 12 {
		return nil, &domain.ErrValidation{Field: "month", Reason: fmt.Sprintf("%d is not between 1 and 12", month)}
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return e.generate(ctx, accountKey, start, end)
}

// GenerateForQuarter builds a report for one calendar quarter (Q1 = Jan-Mar,
// Q2 = Apr-Jun, Q3 = Jul-Sep, Q4 = Oct-Dec).
func (e *Engine) GenerateForQuarter(ctx context.Context, accountKey string, year, quarter int) (*domain.SelfAssessmentReport, error) {
	if quarter < 1 || quarter > 4 {
		return nil, &domain.ErrValidation{Field: "quarter", Reason: fmt.Sprintf("invalid quarter %d: must be between 1 and 4", quarter)}
	}
	start := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return e.generate(ctx, accountKey, start, end)
}

// generate is the single internal routine all entry points converge on.
func (e *Engine) generate(ctx context.Context, accountKey string, start, end time.Time) (*domain.SelfAssessmentReport, error) {
	taxYearID := taxyear.ForDate(start)

	// Fail fast on an unpublished tax year before touching the ledger.
	if _, err := e.Rates.Get(taxYearID); err != nil {
		return nil, err
	}

	summary, err := e.Ledger.NetProfit(ctx, accountKey, start, end)
	if err != nil {
		e.Logger.Errorf("ledger aggregation failed for %s: %v", accountKey, err)
		return nil, &domain.ErrLedger{AccountKey: accountKey, Err: err}
	}

	// A loss is treated as zero income by every calculator; the take-home
	// figure below still subtracts from the real (possibly negative) profit.
	profit := summary.NetProfit
	if profit < 0 {
		e.Logger.Debugf("account %s: net loss %s floored to zero for tax purposes", accountKey, profit)
		profit = 0
	}

	incomeTax, err := e.IncomeTax.Calculate(profit, taxYearID)
	if err != nil {
		return nil, err
	}
	ni, err := e.NI.Calculate(profit, taxYearID)
	if err != nil {
		return nil, err
	}

	totalLiability := incomeTax.TotalTax + ni.Total

	payments, err := e.Payments.Calculate(totalLiability, taxYearID)
	if err != nil {
		return nil, err
	}
	deadlines, err := e.Deadlines.Calculate(taxYearID)
	if err != nil {
		return nil, err
	}

	e.Logger.Infof("report %s %s..%s: profit %s, liability %s",
		accountKey, start.Format(taxyear.DateLayout), end.Format(taxyear.DateLayout),
		summary.NetProfit, totalLiability)

	return &domain.SelfAssessmentReport{
		AccountKey: accountKey,
		Period: domain.ReportPeriod{
			Start:   start,
			End:     end,
			TaxYear: taxYearID,
		},
		Ledger:            *summary,
		IncomeTax:         *incomeTax,
		NationalInsurance: *ni,
		Deadlines:         *deadlines,
		PaymentsOnAccount: *payments,
		Summary: domain.ReportSummary{
			TotalTaxLiability: totalLiability,
			TakeHome:          summary.NetProfit - totalLiability,
		},
	}, nil
}
