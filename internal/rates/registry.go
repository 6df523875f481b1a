// Package rates holds the versioned statutory rate tables. Tables are
// registered once, keyed by tax year identifier, and never mutated; an
// unknown tax year is a hard error, never a fallback to a neighbouring year.
package rates

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

// Registry maps tax year identifiers to their immutable rate tables.
type Registry struct {
	tables map[string]*domain.RateTable
}

// NewRegistry returns a registry pre-loaded with the built-in tables.
func NewRegistry() *Registry {
	r := &Registry{tables: make(map[string]*domain.RateTable)}
	for _, rt := range builtinTables() {
		if err := r.Register(rt); err != nil {
			// Built-in tables are validated by the package tests; a bad one
			// is a programming error.
			panic(err)
		}
	}
	return r
}

// Register adds a validated table. Re-registering an already published tax
// year is rejected: published tables are immutable.
func (r *Registry) Register(rt *domain.RateTable) error {
	if err := rt.Validate(); err != nil {
		return err
	}
	if _, exists := r.tables[rt.TaxYear]; exists {
		return fmt.Errorf("rate table for %s is already published", rt.TaxYear)
	}
	r.tables[rt.TaxYear] = rt
	return nil
}

// Get looks up the table for a tax year.
func (r *Registry) Get(taxYear string) (*domain.RateTable, error) {
	rt, ok := r.tables[taxYear]
	if !ok {
		return nil, &domain.ErrUnknownTaxYear{TaxYear: taxYear}
	}
	return rt, nil
}

// Years lists the published tax years in ascending order.
func (r *Registry) Years() []string {
	years := make([]string, 0, len(r.tables))
	for y := range r.tables {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// ratesFile is the YAML overlay document shape.
type ratesFile struct {
	RateTables []*domain.RateTable `yaml:"rate_tables"`
}

// LoadFile registers additional tables from a YAML overlay file. Monetary
// figures in the file are pence. Loading stops at the first invalid or
// duplicate table.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rates file %s: %w", path, err)
	}
	var f ratesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse rates file %s: %w", path, err)
	}
	if len(f.RateTables) == 0 {
		return fmt.Errorf("rates file %s contains no rate tables", path)
	}
	for _, rt := range f.RateTables {
		if err := r.Register(rt); err != nil {
			return fmt.Errorf("rates file %s: %w", path, err)
		}
	}
	return nil
}
