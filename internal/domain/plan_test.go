package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDateRoundTrip(t *testing.T) {
	day := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	rendered := FormatPlanDate(day)
	assert.Equal(t, "Mon 03/17/25", rendered)

	parsed, err := ParsePlanDate(rendered)
	require.NoError(t, err)
	assert.True(t, day.Equal(parsed))
}

func TestParsePlanDate_RejectsOtherFormats(t *testing.T) {
	_, err := ParsePlanDate("2025-03-17")
	assert.Error(t, err)
	_, err = ParsePlanDate("03/17/25")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC)
	b := time.Date(2025, 2, 1, 4, 0, 0, 0, time.UTC)

	assert.Equal(t, 31, DaysBetween(a, b))
	assert.Equal(t, -31, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 6, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}
