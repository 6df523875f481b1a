package rates

import (
	"github.com/shopspring/decimal"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

// Built-in rate tables. Monetary figures are pence. Sources: HMRC rates and
// thresholds for the self-employed, per published tax year.
func builtinTables() []*domain.RateTable {
	half := decimal.NewFromFloat(0.5)
	bands := []domain.TaxBand{
		{Name: "basic", UpperBound: 3_770_000, Rate: decimal.NewFromFloat(0.20)},
		{Name: "higher", UpperBound: 7_487_000, Rate: decimal.NewFromFloat(0.40)},
		{Name: "additional", UpperBound: 0, Rate: decimal.NewFromFloat(0.45)},
	}

	return []*domain.RateTable{
		{
			TaxYear:                    "2023-24",
			PersonalAllowance:          1_257_000,
			TaperThreshold:             10_000_000,
			TaperRate:                  half,
			Bands:                      bands,
			Class2WeeklyRate:           345,
			SmallProfitsThreshold:      672_500,
			Class4LowerLimit:           1_257_000,
			Class4UpperLimit:           5_027_000,
			Class4MainRate:             decimal.NewFromFloat(0.09),
			Class4AdditionalRate:       decimal.NewFromFloat(0.02),
			PaymentsOnAccountThreshold: 100_000,
		},
		{
			TaxYear:                    "2024-25",
			PersonalAllowance:          1_257_000,
			TaperThreshold:             10_000_000,
			TaperRate:                  half,
			Bands:                      bands,
			Class2WeeklyRate:           345,
			SmallProfitsThreshold:      672_500,
			Class4LowerLimit:           1_257_000,
			Class4UpperLimit:           5_027_000,
			Class4MainRate:             decimal.NewFromFloat(0.06),
			Class4AdditionalRate:       decimal.NewFromFloat(0.02),
			PaymentsOnAccountThreshold: 100_000,
		},
		{
			TaxYear:                    "2025-26",
			PersonalAllowance:          1_257_000,
			TaperThreshold:             10_000_000,
			TaperRate:                  half,
			Bands:                      bands,
			Class2WeeklyRate:           345,
			SmallProfitsThreshold:      672_500,
			Class4LowerLimit:           1_257_000,
			Class4UpperLimit:           5_027_000,
			Class4MainRate:             decimal.NewFromFloat(0.06),
			Class4AdditionalRate:       decimal.NewFromFloat(0.02),
			PaymentsOnAccountThreshold: 100_000,
		},
	}
}
