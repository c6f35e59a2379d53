package workday

import (
	"time"

	"github.com/workledger/workledger-backend-go/internal/pkg/worktime"
)

// WorkDay is a calendar date on which attendance and overtime may be recorded.
// Date is always midnight UTC.
type WorkDay struct {
	ID        string
	Date      time.Time
	CreatedAt time.Time
}

type WorkDayFilter struct {
	From *time.Time
	To   *time.Time
}

const generationHorizonDays = 30

// UpcomingDates returns the weekdays of the next 30 days starting tomorrow,
// followed by the weekdays of the next calendar month, without duplicates.
func UpcomingDates(today time.Time) []time.Time {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	seen := make(map[time.Time]struct{})
	var dates []time.Time
	add := func(d time.Time) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			return
		}
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}

	for i := 1; i <= generationHorizonDays; i++ {
		add(today.AddDate(0, 0, i))
	}

	firstOfNext := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	for d := firstOfNext; d.Month() == firstOfNext.Month(); d = d.AddDate(0, 0, 1) {
		add(d)
	}

	return dates
}

// SessionDate resolves the date of a session transition. Sessions are only
// ever recorded on the current day in loc, so any other date is ErrNotToday.
func SessionDate(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	today := worktime.DateOf(now, loc)
	if raw == "" {
		return today, nil
	}

	date, err := worktime.ParseDate(raw)
	if err != nil {
		return time.Time{}, err
	}
	if !date.Equal(today) {
		return time.Time{}, ErrNotToday
	}
	return date, nil
}
