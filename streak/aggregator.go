package streak

import "time"

// Record is the minimal shape of one activity row the aggregator consumes.
// The caller applies the lookback window (365 days) in its query.
type Record struct {
	Category   Category
	OccurredOn time.Time
}

// CategoryStreaks holds per-scope streaks for one user.
type CategoryStreaks struct {
	Overall    Result              `json:"overall"`
	ByCategory map[Category]Result `json:"by_category"`
}

// AggregateByCategory groups a user's records by category and runs the
// calculator once per recognized category plus once over the union of all
// categories. Records with an invalid date are skipped; records with an
// unknown category only contribute to the overall streak.
func AggregateByCategory(records []Record, clock Clock) CategoryStreaks {
	today := Today(clock)
	yesterday := Yesterday(clock)

	all := make([]string, 0, len(records))
	byCat := make(map[Category][]string)
	for _, r := range records {
		key, err := DayKey(r.OccurredOn)
		if err != nil {
			continue
		}
		all = append(all, key)
		if r.Category.Known() {
			byCat[r.Category] = append(byCat[r.Category], key)
		}
	}

	out := CategoryStreaks{
		Overall:    Calculate(all, today, yesterday),
		ByCategory: make(map[Category]Result, len(byCat)),
	}
	for cat, keys := range byCat {
		out.ByCategory[cat] = Calculate(keys, today, yesterday)
	}
	return out
}

// ActiveToday reports whether any record falls on the current day.
func ActiveToday(records []Record, clock Clock) bool {
	today := Today(clock)
	for _, r := range records {
		if key, err := DayKey(r.OccurredOn); err == nil && key == today {
			return true
		}
	}
	return false
}
