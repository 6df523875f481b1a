package taxyear

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KilimcininKorOglu/ingiltere-muhasebe-sub000/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForDate(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		want string
	}{
		{"5 April belongs to the outgoing year", date(2026, time.April, 5), "2025-26"},
		{"6 April starts the new year", date(2026, time.April, 6), "2026-27"},
		{"mid year", date(2025, time.September, 1), "2025-26"},
		{"january before year end", date(2026, time.January, 15), "2025-26"},
		{"1 January", date(2025, time.January, 1), "2024-25"},
		{"31 December", date(2025, time.December, 31), "2025-26"},
		{"century wrap pads the suffix", date(2099, time.June, 1), "2099-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForDate(tt.d))
		})
	}
}

func TestBounds(t *testing.T) {
	start, end, err := Bounds("2025-26")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.April, 6), start)
	assert.Equal(t, date(2026, time.April, 5), end)
}

func TestBounds_RoundTripsWithForDate(t *testing.T) {
	for _, id := range []string{"2023-24", "2024-25", "2025-26"} {
		start, end, err := Bounds(id)
		require.NoError(t, err)
		assert.Equal(t, id, ForDate(start), "start date should resolve to its own tax year")
		assert.Equal(t, id, ForDate(end), "end date should resolve to its own tax year")
		assert.NotEqual(t, id, ForDate(end.AddDate(0, 0, 1)))
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, id := range []string{"2025", "25-26", "2025-2026", "2025-28", "abcd-ef", ""} {
		_, err := Parse(id)
		assert.Error(t, err, "should reject %q", id)
		var validation *domain.ErrValidation
		assert.ErrorAs(t, err, &validation)
	}
}

func TestValidateDateRange(t *testing.T) {
	start, end, err := ValidateDateRange("2025-04-06", "2026-04-05")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.April, 6), start)
	assert.Equal(t, date(2026, time.April, 5), end)
}

func TestValidateDateRange_MalformedStart(t *testing.T) {
	_, _, err := ValidateDateRange("06/04/2025", "2026-04-05")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start date", "error should name the malformed side")
}

func TestValidateDateRange_MalformedEnd(t *testing.T) {
	_, _, err := ValidateDateRange("2025-04-06", "not-a-date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end date", "error should name the malformed side")
}

func TestValidateDateRange_StartAfterEnd(t *testing.T) {
	_, _, err := ValidateDateRange("2026-01-01", "2025-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after")
}
