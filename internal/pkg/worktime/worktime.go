// Package worktime holds the time-of-day arithmetic shared by attendance and
// overtime sessions.
package worktime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// HoursPrecision is the number of decimal places kept on elapsed hours.
const HoursPrecision = 4

const DateLayout = "2006-01-02"

var minutesPerHour = decimal.NewFromInt(60)

// TimeOfDay is an offset from local midnight.
type TimeOfDay time.Duration

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}

	limits := []int{23, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var total time.Duration
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
		total += time.Duration(n) * units[i]
	}

	return TimeOfDay(total), nil
}

// MustParseTimeOfDay is ParseTimeOfDay for constants.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// On returns the instant at which this time of day occurs on date's calendar day in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).Add(time.Duration(t))
}

// Of returns the wall-clock time of day of instant in loc.
func Of(instant time.Time, loc *time.Location) TimeOfDay {
	local := instant.In(loc)
	return TimeOfDay(time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second)
}

// MinuteOfDay returns the minutes elapsed since local midnight, seconds dropped.
func MinuteOfDay(instant time.Time, loc *time.Location) int {
	local := instant.In(loc)
	return local.Hour()*60 + local.Minute()
}

// ElapsedHours is the only way session hours are derived:
// end_fraction_of_day - start_fraction_of_day, floored at zero.
func ElapsedHours(start, end time.Time, loc *time.Location) decimal.Decimal {
	minutes := MinuteOfDay(end, loc) - MinuteOfDay(start, loc)
	if minutes <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(HoursPrecision)
}

// DateOf returns the calendar date of instant in loc, as midnight UTC.
func DateOf(instant time.Time, loc *time.Location) time.Time {
	local := instant.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}
