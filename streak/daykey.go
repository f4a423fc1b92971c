// Package streak derives consecutive-day streaks, leaderboard rankings and
// weekly summaries from raw per-activity dates. All computation is day-granular
// and bucketed on the UTC calendar day; time-of-day is discarded.
package streak

import (
	"errors"
	"time"
)

// DayKeyLayout is the canonical YYYY-MM-DD representation of a calendar day.
const DayKeyLayout = "2006-01-02"

// ErrInvalidDate is returned when a timestamp cannot be bucketed into a day.
var ErrInvalidDate = errors.New("invalid date")

// Clock supplies the current time. Injected everywhere so computations are
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall-clock implementation used outside tests.
var SystemClock Clock = systemClock{}

// FixedClock always reports the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DayKey buckets a timestamp into its UTC calendar day. Callers must not
// coerce invalid input to "today"; a zero time is rejected.
func DayKey(t time.Time) (string, error) {
	if t.IsZero() {
		return "", ErrInvalidDate
	}
	return t.UTC().Format(DayKeyLayout), nil
}

// ParseDayKey converts a day key back to UTC midnight of that day.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Today returns the day key of the current UTC day.
func Today(clock Clock) string {
	return clock.Now().UTC().Format(DayKeyLayout)
}

// Yesterday returns the day key one calendar day before today. Uses AddDate
// rather than a 24h subtraction so month, year and leap rollovers hold.
func Yesterday(clock Clock) string {
	now := clock.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -1).Format(DayKeyLayout)
}

// PinToDay normalizes a timestamp to UTC midnight of its calendar day. This is
// the stored form of occurred_on, so day keys extracted later can never drift
// across a day boundary.
func PinToDay(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrInvalidDate
	}
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC), nil
}
