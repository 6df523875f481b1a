package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/taxyear"
)

// ConsoleFormatter renders a human-readable breakdown of the report.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report *domain.SelfAssessmentReport) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, strings.Repeat("=", 72))
	fmt.Fprintln(buf, "SELF ASSESSMENT REPORT")
	fmt.Fprintln(buf, strings.Repeat("=", 72))
	fmt.Fprintf(buf, "Account:   %s\n", report.AccountKey)
	fmt.Fprintf(buf, "Period:    %s to %s (tax year %s)\n",
		report.Period.Start.Format(taxyear.DateLayout),
		report.Period.End.Format(taxyear.DateLayout),
		report.Period.TaxYear)
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "LEDGER")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	fmt.Fprintf(buf, "Income:      %14s\n", report.Ledger.Income.Format())
	fmt.Fprintf(buf, "Expenses:    %14s\n", report.Ledger.Expenses.Format())
	fmt.Fprintf(buf, "Net profit:  %14s\n", report.Ledger.NetProfit.Format())
	fmt.Fprintln(buf)

	it := report.IncomeTax
	fmt.Fprintln(buf, "INCOME TAX")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	fmt.Fprintf(buf, "Personal allowance: %14s\n", it.Allowance.Format())
	fmt.Fprintf(buf, "Taxable income:     %14s\n", it.TaxableIncome.Format())
	for _, b := range it.Bands {
		fmt.Fprintf(buf, "  %-12s %5s%% on %14s = %14s\n",
			b.Name, formatPercent(b.Rate), b.AmountTaxed.Format(), b.Tax.Format())
	}
	fmt.Fprintf(buf, "Total income tax:   %14s (effective rate %s%%)\n",
		it.TotalTax.Format(), formatPercent(it.EffectiveRate))
	fmt.Fprintln(buf)

	ni := report.NationalInsurance
	fmt.Fprintln(buf, "NATIONAL INSURANCE")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	if ni.Class2.Liable {
		fmt.Fprintf(buf, "Class 2: %s x %d weeks = %14s\n",
			ni.Class2.WeeklyRate.Format(), ni.Class2.Weeks, ni.Class2.AnnualAmount.Format())
	} else {
		fmt.Fprintf(buf, "Class 2: not liable (profit below %s)\n",
			ni.Class2.SmallProfitsThreshold.Format())
	}
	for _, b := range ni.Class4.Bands {
		fmt.Fprintf(buf, "Class 4 %-10s %5s%% on %14s = %14s\n",
			b.Name, formatPercent(b.Rate), b.Profit.Format(), b.Amount.Format())
	}
	fmt.Fprintf(buf, "Total NI:           %14s\n", ni.Total.Format())
	fmt.Fprintln(buf)

	poa := report.PaymentsOnAccount
	fmt.Fprintln(buf, "PAYMENTS ON ACCOUNT")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	if poa.Required {
		fmt.Fprintf(buf, "First payment:  %14s due %s\n",
			poa.FirstPayment.Format(), poa.FirstPaymentDate.Format(taxyear.DateLayout))
		fmt.Fprintf(buf, "Second payment: %14s due %s\n",
			poa.SecondPayment.Format(), poa.SecondPaymentDate.Format(taxyear.DateLayout))
	} else {
		fmt.Fprintf(buf, "Not required (liability at or below %s)\n", poa.Threshold.Format())
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "DEADLINES")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	for _, d := range report.Deadlines.Deadlines {
		fmt.Fprintf(buf, "%s  %s\n", d.Date.Format(taxyear.DateLayout), d.Descriptions["en"])
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, strings.Repeat("=", 72))
	fmt.Fprintf(buf, "Total tax liability: %14s\n", report.Summary.TotalTaxLiability.Format())
	fmt.Fprintf(buf, "Take-home:           %14s\n", report.Summary.TakeHome.Format())
	fmt.Fprintln(buf, strings.Repeat("=", 72))

	return buf.Bytes(), nil
}

func formatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2)
}
