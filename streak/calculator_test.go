package streak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateEmptyInput(t *testing.T) {
	res := Calculate(nil, "2026-01-15", "2026-01-14")
	assert.Equal(t, Result{}, res)
}

func TestCalculateSingleDay(t *testing.T) {
	today, yesterday := "2026-01-15", "2026-01-14"

	assert.Equal(t, Result{Current: 1, Longest: 1}, Calculate([]string{today}, today, yesterday))
	assert.Equal(t, Result{Current: 1, Longest: 1}, Calculate([]string{yesterday}, today, yesterday))
}

func TestCalculateGraceDayExpired(t *testing.T) {
	// Most recent activity strictly older than yesterday breaks the streak,
	// but the historical run still counts toward longest.
	res := Calculate([]string{"2026-01-10", "2026-01-11", "2026-01-12"}, "2026-01-15", "2026-01-14")
	assert.Equal(t, 0, res.Current)
	assert.Equal(t, 3, res.Longest)
}

func TestCalculateThreeDayRun(t *testing.T) {
	// today=01-15 with activity on 13/14/15.
	res := Calculate([]string{"2026-01-14", "2026-01-13", "2026-01-15"}, "2026-01-15", "2026-01-14")
	assert.Equal(t, Result{Current: 3, Longest: 3}, res)
}

func TestCalculateYearBoundaryContinuity(t *testing.T) {
	// today=2026-01-02: yesterday 01-01 present, walking back across the year
	// boundary must not break the run.
	days := []string{"2025-12-30", "2025-12-31", "2026-01-01"}
	res := Calculate(days, "2026-01-02", "2026-01-01")
	assert.Equal(t, Result{Current: 3, Longest: 3}, res)
}

func TestCalculateGapResetsCurrent(t *testing.T) {
	// Logged today and five days ago only.
	res := Calculate([]string{"2026-01-15", "2026-01-10"}, "2026-01-15", "2026-01-14")
	assert.Equal(t, Result{Current: 1, Longest: 1}, res)
}

func TestCalculateLongestIndependentOfToday(t *testing.T) {
	// A seven-day run in the past dwarfs the current two-day run.
	days := []string{
		"2025-11-01", "2025-11-02", "2025-11-03", "2025-11-04",
		"2025-11-05", "2025-11-06", "2025-11-07",
		"2026-01-14", "2026-01-15",
	}
	res := Calculate(days, "2026-01-15", "2026-01-14")
	assert.Equal(t, 2, res.Current)
	assert.Equal(t, 7, res.Longest)
}

func TestCalculateDeduplicatesDefensively(t *testing.T) {
	days := []string{"2026-01-15", "2026-01-15", "2026-01-14", "2026-01-14"}
	res := Calculate(days, "2026-01-15", "2026-01-14")
	assert.Equal(t, Result{Current: 2, Longest: 2}, res)
}

func TestCalculateDropsMalformedKeys(t *testing.T) {
	days := []string{"2026-01-15", "garbage", ""}
	res := Calculate(days, "2026-01-15", "2026-01-14")
	assert.Equal(t, Result{Current: 1, Longest: 1}, res)
}

func TestCalculateLeapDayContinuity(t *testing.T) {
	days := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	res := Calculate(days, "2024-03-01", "2024-02-29")
	assert.Equal(t, Result{Current: 3, Longest: 3}, res)
}

func TestCalculateIsIdempotent(t *testing.T) {
	days := []string{"2026-01-13", "2026-01-15", "2026-01-14", "2026-01-10"}
	first := Calculate(days, "2026-01-15", "2026-01-14")
	second := Calculate(days, "2026-01-15", "2026-01-14")
	assert.Equal(t, first, second)
}
