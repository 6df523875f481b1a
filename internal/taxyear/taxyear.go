// Package taxyear maps calendar dates onto UK tax years. The tax year runs
// 6 April to 5 April and is identified as "YYYY-YY", e.g. "2025-26".
package taxyear

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ForDate returns the identifier of the tax year containing d. 5 April
// belongs to the outgoing year; 6 April starts the new one.
func ForDate(d time.Time) string {
	startYear := d.Year()
	newYearStart := time.Date(d.Year(), time.April, 6, 0, 0, 0, 0, time.UTC)
	if d.Before(newYearStart) {
		startYear--
	}
	return Identifier(startYear)
}

// Identifier formats the tax year beginning 6 April of startYear.
func Identifier(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// Parse validates a "YYYY-YY" identifier and returns its start year. The
// second component must be the start year plus one, modulo a century.
func Parse(taxYear string) (int, error) {
	parts := strings.SplitN(taxYear, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, &domain.ErrValidation{Field: "tax year", Reason: fmt.Sprintf("%q is not in YYYY-YY form", taxYear)}
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &domain.ErrValidation{Field: "tax year", Reason: fmt.Sprintf("%q is not in YYYY-YY form", taxYear)}
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &domain.ErrValidation{Field: "tax year", Reason: fmt.Sprintf("%q is not in YYYY-YY form", taxYear)}
	}
	if (start+1)%100 != end {
		return 0, &domain.ErrValidation{Field: "tax year", Reason: fmt.Sprintf("%q does not name consecutive years", taxYear)}
	}
	return start, nil
}

// Bounds resolves an identifier to its start (6 April) and end (5 April)
// dates.
func Bounds(taxYear string) (start, end time.Time, err error) {
	startYear, err := Parse(taxYear)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(startYear, time.April, 6, 0, 0, 0, 0, time.UTC)
	end = time.Date(startYear+1, time.April, 5, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// ParseDate parses a strict YYYY-MM-DD calendar date. The field name is used
// in the validation error so callers can report which side of a range was
// malformed.
func ParseDate(field, value string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, &domain.ErrValidation{Field: field, Reason: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", value)}
	}
	return d, nil
}

// ValidateDateRange parses both sides of a date range and rejects ranges
// whose start falls after their end.
func ValidateDateRange(startStr, endStr string) (start, end time.Time, err error) {
	start, err = ParseDate("start date", startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = ParseDate("end date", endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, &domain.ErrValidation{
			Field:  "date range",
			Reason: fmt.Sprintf("start %s is after end %s", startStr, endStr),
		}
	}
	return start, end, nil
}
