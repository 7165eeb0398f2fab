package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	at := time.Date(2024, 3, 10, 15, 4, 5, 0, loc)

	start, end := DayBounds(at)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc), end)
	assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 999999999, loc), EndOfDay(at))
}

func TestDayBounds_DST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// spring forward: 2024-03-10 is 23 hours long
	start, end := DayBounds(time.Date(2024, 3, 10, 12, 0, 0, 0, loc))
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", FormatDay(day))

	_, err = ParseDay("2023-02-29", time.UTC)
	assert.Error(t, err)
	assert.Equal(t, "", FormatDay(time.Time{}))
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	a := time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC) // 01:00 on the 10th in loc
	b := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, b, time.UTC))
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)
	clock.Advance(time.Hour)
	assert.Equal(t, start.Add(time.Hour), clock.Now())

	clock.Set(start)
	assert.Equal(t, start, clock.Now())

	sys := NewSystemClock(time.UTC)
	assert.Equal(t, time.UTC, sys.Now().Location())
}
