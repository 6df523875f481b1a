package calculation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

// stubLedger returns a fixed summary and records the range it was asked for.
type stubLedger struct {
	summary    *domain.LedgerSummary
	err        error
	account    string
	start, end time.Time
	calls      int
}

func (s *stubLedger) NetProfit(_ context.Context, accountKey string, start, end time.Time) (*domain.LedgerSummary, error) {
	s.calls++
	s.account = accountKey
	s.start = start
	s.end = end
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func TestEngine_FullTaxYearReport(t *testing.T) {
	ledger := &stubLedger{summary: &domain.LedgerSummary{
		Income:    5_000_000,
		Expenses:  2_000_000,
		NetProfit: 3_000_000,
	}}
	eng := NewEngine(newTestRegistry(), ledger)

	report, err := eng.GenerateForTaxYear(context.Background(), "acct-1", testYear)
	require.NoError(t, err)

	assert.Equal(t, "acct-1", report.AccountKey)
	assert.Equal(t, testYear, report.Period.TaxYear)
	assert.Equal(t, time.Date(2025, time.April, 6, 0, 0, 0, 0, time.UTC), ledger.start)
	assert.Equal(t, time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC), ledger.end)

	// £30,000 profit: £3,486.00 income tax, £179.40 + £1,045.80 NI.
	assert.Equal(t, domain.Money(348_600), report.IncomeTax.TotalTax)
	assert.Equal(t, domain.Money(122_520), report.NationalInsurance.Total)
	assert.Equal(t, domain.Money(471_120), report.Summary.TotalTaxLiability)
	assert.Equal(t, domain.Money(2_528_880), report.Summary.TakeHome)

	assert.True(t, report.PaymentsOnAccount.Required)
	assert.Equal(t, domain.Money(235_560), report.PaymentsOnAccount.FirstPayment)
	assert.Len(t, report.Deadlines.Deadlines, 5)
}

func TestEngine_DateRangeResolvesTaxYearFromStart(t *testing.T) {
	ledger := &stubLedger{summary: &domain.LedgerSummary{NetProfit: 1_000_000, Income: 1_000_000}}
	eng := NewEngine(newTestRegistry(), ledger)

	report, err := eng.GenerateForDateRange(context.Background(), "acct-1", "2026-04-01", "2026-04-30")
	require.NoError(t, err)
	assert.Equal(t, "2025-26", report.Period.TaxYear, "start date governs rate selection")
}

func TestEngine_MonthAndQuarterBounds(t *testing.T) {
	ledger := &stubLedger{summary: &domain.LedgerSummary{NetProfit: 500_000, Income: 500_000}}
	eng := NewEngine(newTestRegistry(), ledger)

	_, err := eng.GenerateForMonth(context.Background(), "acct-1", 2026, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), ledger.start)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), ledger.end)

	_, err = eng.GenerateForQuarter(context.Background(), "acct-1", 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), ledger.start)
	assert.Equal(t, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), ledger.end)
}

func TestEngine_InvalidMonth(t *testing.T) {
	eng := NewEngine(newTestRegistry(), &stubLedger{})

	for _, month := range []int{0, 13, -1} {
		_, err := eng.GenerateForMonth(context.Background(), "acct-1", 2025, month)
		var validation *domain.ErrValidation
		assert.ErrorAs(t, err, &validation, "month %d", month)
	}
}

func TestEngine_InvalidQuarter(t *testing.T) {
	eng := NewEngine(newTestRegistry(), &stubLedger{})

	_, err := eng.GenerateForQuarter(context.Background(), "acct-1", 2025, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quarter 5")
}

func TestEngine_LedgerFailureWrapped(t *testing.T) {
	cause := errors.New("connection refused")
	eng := NewEngine(newTestRegistry(), &stubLedger{err: cause})

	_, err := eng.GenerateForTaxYear(context.Background(), "acct-9", testYear)
	require.Error(t, err)
	var lerr *domain.ErrLedger
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "acct-9", lerr.AccountKey)
	assert.ErrorIs(t, err, cause)
}

func TestEngine_UnpublishedYearFailsBeforeLedgerCall(t *testing.T) {
	ledger := &stubLedger{summary: &domain.LedgerSummary{}}
	eng := NewEngine(newTestRegistry(), ledger)

	_, err := eng.GenerateForTaxYear(context.Background(), "acct-1", "2099-00")
	var unknown *domain.ErrUnknownTaxYear
	require.ErrorAs(t, err, &unknown)
	assert.Zero(t, ledger.calls, "ledger must not be consulted for an unpublished year")
}

func TestEngine_LossFlooredButTakeHomeNegative(t *testing.T) {
	ledger := &stubLedger{summary: &domain.LedgerSummary{
		Income:    1_000_000,
		Expenses:  1_500_000,
		NetProfit: -500_000,
	}}
	eng := NewEngine(newTestRegistry(), ledger)

	report, err := eng.GenerateForTaxYear(context.Background(), "acct-1", testYear)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(0), report.IncomeTax.TotalTax)
	assert.Equal(t, domain.Money(0), report.NationalInsurance.Total)
	assert.Equal(t, domain.Money(-500_000), report.Summary.TakeHome)
}

func TestEngine_SetLoggerNilRestoresNop(t *testing.T) {
	eng := NewEngine(newTestRegistry(), &stubLedger{})
	eng.SetLogger(nil)
	assert.IsType(t, NopLogger{}, eng.Logger)
}
