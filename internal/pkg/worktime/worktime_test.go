package worktime

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 3, hour, minute, 0, 0, time.UTC)
}

func TestElapsedHours(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       string
	}{
		{"morning shift", at(9, 0), at(13, 30), "4.5"},
		{"full day", at(9, 0), at(19, 0), "10"},
		{"seven minutes", at(9, 0), at(9, 7), "0.1167"},
		{"same minute", at(9, 0), at(9, 0), "0"},
		{"end before start", at(23, 0), at(1, 0), "0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ElapsedHours(c.start, c.end, time.UTC)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)), "got %s want %s", got, c.want)
		})
	}
}

func TestElapsedHours_IgnoresSeconds(t *testing.T) {
	start := time.Date(2025, time.March, 3, 9, 0, 59, 0, time.UTC)
	end := time.Date(2025, time.March, 3, 9, 30, 1, 0, time.UTC)
	assert.True(t, ElapsedHours(start, end, time.UTC).Equal(decimal.RequireFromString("0.5")))
}

func TestElapsedHours_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	// 03:00 UTC is 09:00 local; 07:30 UTC is 13:30 local.
	start := time.Date(2025, time.March, 3, 3, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 3, 7, 30, 0, 0, time.UTC)
	assert.True(t, ElapsedHours(start, end, loc).Equal(decimal.RequireFromString("4.5")))
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("19:00")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(19*time.Hour), got)
	assert.Equal(t, "19:00", got.String())

	got, err = ParseTimeOfDay("09:00:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(9*time.Hour+30*time.Second), got)

	for _, bad := range []string{"", "19", "24:00", "12:60", "ab:cd", "1:2:3:4"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDay_On(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	date := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	cutoff := MustParseTimeOfDay("19:00").On(date, loc)
	assert.Equal(t, time.Date(2025, time.March, 3, 13, 0, 0, 0, time.UTC), cutoff.UTC())
}

func TestOfAndDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	instant := time.Date(2025, time.March, 3, 20, 15, 10, 0, time.UTC)

	assert.Equal(t, TimeOfDay(2*time.Hour+15*time.Minute+10*time.Second), Of(instant, loc))
	assert.Equal(t, "2025-03-04", FormatDate(DateOf(instant, loc)))
}
