package streak

import (
	"math"
	"time"
)

// WeekStart returns the most recent Sunday at UTC midnight, inclusive lower
// bound of the current calendar week.
func WeekStart(clock Clock) time.Time {
	now := clock.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -int(now.Weekday()))
}

// WeeklySummary aggregates one user's activity inside the current week. Zero
// activity yields zero values, never an error.
type WeeklySummary struct {
	CodingHours       float64 `json:"coding_hours"`
	LeetcodeSolved    int     `json:"leetcode_solved"`
	Workouts          int     `json:"workouts"`
	ReadingActivities int     `json:"reading_activities"`
}

// WeeklyInput carries the already-fetched per-category rows restricted to
// occurred_on >= WeekStart.
type WeeklyInput struct {
	CodingMinutes     []int
	LeetcodeSolved    int
	WorkoutsCompleted int
	ReadingActivities int
}

// SummarizeWeek sums coding minutes and converts to hours rounded to one
// decimal place; the remaining metrics are pass-through counts.
func SummarizeWeek(in WeeklyInput) WeeklySummary {
	minutes := 0
	for _, m := range in.CodingMinutes {
		minutes += m
	}
	return WeeklySummary{
		CodingHours:       RoundHours(minutes),
		LeetcodeSolved:    in.LeetcodeSolved,
		Workouts:          in.WorkoutsCompleted,
		ReadingActivities: in.ReadingActivities,
	}
}

// RoundHours converts minutes to hours rounded to one decimal place.
func RoundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}
