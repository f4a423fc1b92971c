package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"midweek", utc(2026, time.January, 14, 15), day(2026, time.January, 11)},   // Wednesday -> Sunday
		{"sunday itself", utc(2026, time.January, 11, 8), day(2026, time.January, 11)},
		{"saturday", utc(2026, time.January, 17, 23), day(2026, time.January, 11)},
		{"week spans month boundary", utc(2026, time.February, 2, 9), day(2026, time.February, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(FixedClock{T: tt.now}))
		})
	}
}

func TestSummarizeWeek(t *testing.T) {
	// 90 + 45 minutes = 135 -> 2.3 hours rounded to one decimal.
	got := SummarizeWeek(WeeklyInput{
		CodingMinutes:     []int{90, 45},
		LeetcodeSolved:    2,
		WorkoutsCompleted: 3,
		ReadingActivities: 1,
	})
	assert.Equal(t, WeeklySummary{
		CodingHours:       2.3,
		LeetcodeSolved:    2,
		Workouts:          3,
		ReadingActivities: 1,
	}, got)
}

func TestSummarizeWeekEmpty(t *testing.T) {
	assert.Equal(t, WeeklySummary{}, SummarizeWeek(WeeklyInput{}))
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 2.3, RoundHours(135))
	assert.Equal(t, 1.0, RoundHours(60))
	assert.Equal(t, 0.0, RoundHours(0))
	assert.Equal(t, 0.5, RoundHours(30))
	assert.Equal(t, 1.1, RoundHours(64))
}
