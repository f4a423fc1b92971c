package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateByCategory(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	records := []Record{
		{Category: CategoryCoding, OccurredOn: day(2026, time.January, 15)},
		{Category: CategoryCoding, OccurredOn: day(2026, time.January, 14)},
		{Category: CategoryBook, OccurredOn: day(2026, time.January, 15)},
		{Category: CategoryLeetcode, OccurredOn: day(2026, time.January, 10)},
	}

	got := AggregateByCategory(records, clock)

	// Union covers 10, 14, 15: current run is 14-15.
	assert.Equal(t, Result{Current: 2, Longest: 2}, got.Overall)
	assert.Equal(t, Result{Current: 2, Longest: 2}, got.ByCategory[CategoryCoding])
	assert.Equal(t, Result{Current: 1, Longest: 1}, got.ByCategory[CategoryBook])
	assert.Equal(t, Result{Current: 0, Longest: 1}, got.ByCategory[CategoryLeetcode])
	_, ok := got.ByCategory[CategoryGym]
	assert.False(t, ok, "no records means no entry for the category")
}

func TestAggregateUnknownCategoryCountsOverallOnly(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	records := []Record{
		{Category: Category("yoga"), OccurredOn: day(2026, time.January, 15)},
	}

	got := AggregateByCategory(records, clock)

	assert.Equal(t, Result{Current: 1, Longest: 1}, got.Overall)
	assert.Empty(t, got.ByCategory)
}

func TestAggregateSkipsInvalidDates(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	records := []Record{
		{Category: CategoryCoding, OccurredOn: time.Time{}},
	}

	got := AggregateByCategory(records, clock)
	assert.Equal(t, Result{}, got.Overall)
}

func TestAggregateEmptyInput(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}
	got := AggregateByCategory(nil, clock)
	assert.Equal(t, Result{}, got.Overall)
	assert.Empty(t, got.ByCategory)
}

func TestActiveToday(t *testing.T) {
	clock := FixedClock{T: utc(2026, time.January, 15, 10)}

	assert.True(t, ActiveToday([]Record{
		{Category: CategoryGym, OccurredOn: day(2026, time.January, 15)},
	}, clock))
	assert.False(t, ActiveToday([]Record{
		{Category: CategoryGym, OccurredOn: day(2026, time.January, 14)},
	}, clock))
	assert.False(t, ActiveToday(nil, clock))
}
