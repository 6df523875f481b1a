package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount of sterling in whole pence. All monetary values cross
// package boundaries in this representation; floating point never carries
// currency.
type Money int64

// MoneyFromDecimal converts a pounds value to pence, rounding to the nearest
// penny.
func MoneyFromDecimal(pounds decimal.Decimal) Money {
	return Money(pounds.Mul(decimal.NewFromInt(100)).Round(0).IntPart())
}

// ParseMoney parses a pounds amount such as "12570" or "1234.56" into pence.
// Negative amounts are rejected; ledger net profit is the only negative
// monetary quantity in the system and it is computed, never parsed.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	pence := d.Mul(decimal.NewFromInt(100))
	if !pence.Equal(pence.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: more than two decimal places", s)
	}
	return Money(pence.IntPart()), nil
}

// Decimal returns the amount in pounds as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// Pence returns the raw pence count.
func (m Money) Pence() int64 { return int64(m) }

// String formats the amount as pounds with two decimal places, e.g. "12570.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Format renders the amount with a currency symbol and thousands separators,
// e.g. "£12,570.00".
func (m Money) Format() string {
	neg := m < 0
	v := m
	if neg {
		v = -v
	}
	whole := int64(v) / 100
	frac := int64(v) % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s£%s.%02d", sign, b.String(), frac)
}

// MulRound multiplies the amount by a rate and rounds to the nearest penny.
// Each band or component product is rounded independently; the accumulated
// total may therefore differ from a single-shot calculation by a few pence.
func (m Money) MulRound(rate decimal.Decimal) Money {
	return Money(decimal.NewFromInt(int64(m)).Mul(rate).Round(0).IntPart())
}

// MulFloor multiplies the amount by a rate and floors to whole pence. Used by
// the personal allowance taper, which always rounds the reduction down.
func (m Money) MulFloor(rate decimal.Decimal) Money {
	return Money(decimal.NewFromInt(int64(m)).Mul(rate).Floor().IntPart())
}
