package output

import (
	"encoding/json"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

// JSONFormatter renders the report as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.SelfAssessmentReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
