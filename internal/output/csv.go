package output

import (
	"bytes"
	"encoding/csv"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/taxyear"
)

// CSVFormatter renders the headline figures as one component per row.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.SelfAssessmentReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"component", "value"}); err != nil {
		return nil, err
	}
	rows := [][]string{
		{"account", report.AccountKey},
		{"period_start", report.Period.Start.Format(taxyear.DateLayout)},
		{"period_end", report.Period.End.Format(taxyear.DateLayout)},
		{"tax_year", report.Period.TaxYear},
		{"income", report.Ledger.Income.String()},
		{"expenses", report.Ledger.Expenses.String()},
		{"net_profit", report.Ledger.NetProfit.String()},
		{"taxable_income", report.IncomeTax.TaxableIncome.String()},
		{"income_tax", report.IncomeTax.TotalTax.String()},
		{"class2_ni", report.NationalInsurance.Class2.AnnualAmount.String()},
		{"class4_ni", report.NationalInsurance.Class4.Total.String()},
		{"total_ni", report.NationalInsurance.Total.String()},
		{"total_tax_liability", report.Summary.TotalTaxLiability.String()},
		{"take_home", report.Summary.TakeHome.String()},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
