// Package output renders self-assessment reports for the CLI.
package output

import (
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

// Formatter renders a report into a byte stream for one output format.
type Formatter interface {
	Name() string
	Format(report *domain.SelfAssessmentReport) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Names lists the registered formatter names.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}
