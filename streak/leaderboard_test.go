package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersByCurrentStreak(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	users := []UserActivity{
		{UserID: 1, Username: "ada", Dates: []time.Time{day(2026, time.January, 15)}, TotalActivities: 1},
		{UserID: 2, Username: "grace", Dates: []time.Time{
			day(2026, time.January, 13), day(2026, time.January, 14), day(2026, time.January, 15),
		}, TotalActivities: 3},
	}

	entries := Rank(users, clock)
	require.Len(t, entries, 2)
	assert.Equal(t, "grace", entries[0].Username)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 3, entries[0].CurrentStreak)
	assert.Equal(t, "ada", entries[1].Username)
	assert.Equal(t, 2, entries[1].Rank)
}

func TestRankTieBreakByTotalActivities(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	run := []time.Time{
		day(2026, time.January, 11), day(2026, time.January, 12), day(2026, time.January, 13),
		day(2026, time.January, 14), day(2026, time.January, 15),
	}
	// Equal current and longest streaks; 10 activities beats 7.
	users := []UserActivity{
		{UserID: 1, Username: "seven", Dates: run, TotalActivities: 7},
		{UserID: 2, Username: "ten", Dates: run, TotalActivities: 10},
	}

	entries := Rank(users, clock)
	assert.Equal(t, "ten", entries[0].Username)
	assert.Equal(t, "seven", entries[1].Username)
}

func TestRankFullTieFallsBackToUserID(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	run := []time.Time{day(2026, time.January, 15)}
	users := []UserActivity{
		{UserID: 9, Username: "later", Dates: run, TotalActivities: 1},
		{UserID: 3, Username: "earlier", Dates: run, TotalActivities: 1},
	}

	entries := Rank(users, clock)
	assert.Equal(t, uint(3), entries[0].UserID)
	assert.Equal(t, uint(9), entries[1].UserID)
	// Distinct consecutive ranks even on a full tie.
	assert.Equal(t, []int{1, 2}, []int{entries[0].Rank, entries[1].Rank})
}

func TestRankIsDeterministic(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	users := []UserActivity{
		{UserID: 1, Dates: []time.Time{day(2026, time.January, 15)}, TotalActivities: 2},
		{UserID: 2, Dates: []time.Time{day(2026, time.January, 15)}, TotalActivities: 2},
		{UserID: 3, Dates: []time.Time{day(2026, time.January, 14)}, TotalActivities: 5},
	}

	first := Rank(users, clock)
	second := Rank(users, clock)
	assert.Equal(t, first, second)
}

func TestRankTotalOrderIsConsistent(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	users := []UserActivity{
		{UserID: 1, Dates: []time.Time{day(2026, time.January, 15), day(2026, time.January, 14)}, TotalActivities: 4},
		{UserID: 2, Dates: []time.Time{day(2026, time.January, 15)}, TotalActivities: 9},
		{UserID: 3, Dates: nil, TotalActivities: 0},
		{UserID: 4, Dates: []time.Time{day(2025, time.December, 1)}, TotalActivities: 2},
	}

	entries := Rank(users, clock)
	for i := 1; i < len(entries); i++ {
		a, b := entries[i-1], entries[i]
		tupleGE := a.CurrentStreak > b.CurrentStreak ||
			(a.CurrentStreak == b.CurrentStreak && (a.LongestStreak > b.LongestStreak ||
				(a.LongestStreak == b.LongestStreak && a.TotalActivities >= b.TotalActivities)))
		assert.True(t, tupleGE, "entry %d must dominate entry %d", i-1, i)
	}
}

func TestRankActiveTodayAndCounts(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	users := []UserActivity{
		// Three activities on one day: count stays 3, streak day units stay 1.
		{UserID: 1, Dates: []time.Time{
			day(2026, time.January, 15), day(2026, time.January, 15), day(2026, time.January, 15),
		}, TotalActivities: 3},
		{UserID: 2, Dates: []time.Time{day(2026, time.January, 14)}, TotalActivities: 1},
	}

	entries := Rank(users, clock)
	assert.True(t, entries[0].ActiveToday)
	assert.Equal(t, 1, entries[0].CurrentStreak)
	assert.Equal(t, 3, entries[0].TotalActivities)
	assert.False(t, entries[1].ActiveToday)
	assert.Equal(t, 1, entries[1].CurrentStreak, "yesterday keeps the streak alive")
}

func TestRankEmptyInput(t *testing.T) {
	entries := Rank(nil, FixedClock{T: utc(2026, time.January, 15, 10)})
	assert.Empty(t, entries)
}
