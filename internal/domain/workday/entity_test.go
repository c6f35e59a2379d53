package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingDates(t *testing.T) {
	// Friday 2025-01-10
	today := time.Date(2025, time.January, 10, 15, 4, 0, 0, time.UTC)

	dates := UpcomingDates(today)
	require.NotEmpty(t, dates)

	assert.Equal(t, time.Date(2025, time.January, 13, 0, 0, 0, 0, time.UTC), dates[0], "weekend after today is skipped")

	seen := map[time.Time]bool{}
	for _, d := range dates {
		assert.NotEqual(t, time.Saturday, d.Weekday())
		assert.NotEqual(t, time.Sunday, d.Weekday())
		assert.True(t, d.After(today), "%s is not in the future", d)
		assert.False(t, seen[d], "duplicate %s", d)
		seen[d] = true
	}

	// 30 days from 2025-01-11 end on 2025-02-09. The next month is still February.
	assert.True(t, seen[time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)])
	assert.False(t, seen[time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)])

	// Jan 11..Feb 9 holds 20 weekdays, 5 of them in February,
	// which has 20 weekdays in total.
	assert.Len(t, dates, 20+15)
}

func TestUpcomingDates_DecemberRollsIntoJanuary(t *testing.T) {
	today := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)

	dates := UpcomingDates(today)

	last := dates[len(dates)-1]
	assert.Equal(t, time.January, last.Month())
	assert.Equal(t, 2026, last.Year())
	assert.Equal(t, 30, last.Day()) // 2026-01-31 is a Saturday
}

func TestSessionDate(t *testing.T) {
	loc := time.FixedZone("UTC+6", 6*60*60)
	// 20:00 UTC on 3 March is already 4 March in loc.
	now := time.Date(2025, time.March, 3, 20, 0, 0, 0, time.UTC)
	today := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

	got, err := SessionDate("", now, loc)
	require.NoError(t, err)
	assert.Equal(t, today, got)

	got, err = SessionDate("2025-03-04", now, loc)
	require.NoError(t, err)
	assert.Equal(t, today, got)

	_, err = SessionDate("2025-03-03", now, loc)
	assert.ErrorIs(t, err, ErrNotToday)

	_, err = SessionDate("2025-03-05", now, loc)
	assert.ErrorIs(t, err, ErrNotToday)

	_, err = SessionDate("04.03.2025", now, loc)
	assert.Error(t, err)
}
