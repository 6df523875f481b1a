// Package ledger provides a file-backed implementation of the engine's
// LedgerAggregator collaborator. The production system aggregates from its
// transaction store; the CLI and server aggregate from a CSV export with the
// same semantics.
package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/taxyear"
)

// Entry types recognised in ledger files. Other types are ignored.
const (
	EntryIncome  = "income"
	EntryExpense = "expense"
)

// CSVLedger aggregates income and expense entries from a CSV file with the
// columns: account,date,type,amount,description,voided. Amounts are pounds;
// voided is "true"/"false".
type CSVLedger struct {
	Path string
}

// NewCSVLedger creates a ledger over a CSV file. The file is read per call;
// the aggregator holds no state between reports.
func NewCSVLedger(path string) *CSVLedger {
	return &CSVLedger{Path: path}
}

// NetProfit sums the non-voided entries of the account whose dates fall
// within [start, end] inclusive.
func (l *CSVLedger) NetProfit(ctx context.Context, accountKey string, start, end time.Time) (*domain.LedgerSummary, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", l.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 6

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger header: %w", err)
	}
	if len(header) != 6 || !strings.EqualFold(header[0], "account") {
		return nil, fmt.Errorf("ledger file %s: unexpected header %v", l.Path, header)
	}

	summary := &domain.LedgerSummary{}
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ledger file %s: %w", l.Path, err)
		}
		line++

		if record[0] != accountKey {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(record[5]), "true") {
			continue
		}
		date, err := time.ParseInLocation(taxyear.DateLayout, strings.TrimSpace(record[1]), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("ledger file %s line %d: bad date %q", l.Path, line, record[1])
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		amount, err := domain.ParseMoney(record[3])
		if err != nil {
			return nil, fmt.Errorf("ledger file %s line %d: %w", l.Path, line, err)
		}

		switch strings.ToLower(strings.TrimSpace(record[2])) {
		case EntryIncome:
			summary.Income += amount
		case EntryExpense:
			summary.Expenses += amount
		}
	}

	summary.NetProfit = summary.Income - summary.Expenses
	return summary, nil
}
