package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestDayKey(t *testing.T) {
	key, err := DayKey(utc(2026, time.January, 15, 23))
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", key)

	// Same calendar day regardless of time of day.
	early, err := DayKey(utc(2026, time.January, 15, 0))
	require.NoError(t, err)
	assert.Equal(t, key, early)
}

func TestDayKeyRejectsZeroTime(t *testing.T) {
	_, err := DayKey(time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDayKey(t *testing.T) {
	d, err := ParseDayKey("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, utc(2026, time.February, 28, 0), d)

	_, err = ParseDayKey("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestYesterdayRollovers(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"mid month", utc(2026, time.January, 15, 10), "2026-01-14"},
		{"month boundary", utc(2026, time.March, 1, 0), "2026-02-28"},
		{"leap year boundary", utc(2024, time.March, 1, 12), "2024-02-29"},
		{"year boundary", utc(2026, time.January, 1, 5), "2025-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Yesterday(FixedClock{T: tt.now}))
		})
	}
}

func TestToday(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.July, 4, 23)}
	assert.Equal(t, "2026-07-04", Today(clock))
}

func TestPinToDay(t *testing.T) {
	pinned, err := PinToDay(utc(2026, time.January, 15, 18))
	require.NoError(t, err)
	assert.Equal(t, utc(2026, time.January, 15, 0), pinned)

	_, err = PinToDay(time.Time{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
