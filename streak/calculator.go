package streak

import "sort"

// Result holds the derived streak counts for one scope (a category or the
// union of all categories). Recomputed on every request, never persisted.
type Result struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// Calculate computes the current and longest consecutive-day streaks from an
// unordered set of day keys. Duplicate and malformed keys are dropped rather
// than trusted; the grace-day rule keeps a streak alive when the most recent
// activity was yesterday, since today is not over yet.
func Calculate(keys []string, today, yesterday string) Result {
	days := dedupeSorted(keys)
	if len(days) == 0 {
		return Result{}
	}
	return Result{
		Current: currentStreak(days, today, yesterday),
		Longest: longestStreak(days),
	}
}

// currentStreak walks backwards from the most recent day, counting exact
// one-day predecessors. days must be sorted ascending and deduplicated.
func currentStreak(days []string, today, yesterday string) int {
	latest := days[len(days)-1]
	if latest != today && latest != yesterday {
		return 0
	}

	count := 1
	prev, err := ParseDayKey(latest)
	if err != nil {
		return 0
	}
	for i := len(days) - 2; i >= 0; i-- {
		expected := prev.AddDate(0, 0, -1).Format(DayKeyLayout)
		if days[i] != expected {
			break
		}
		count++
		prev = prev.AddDate(0, 0, -1)
	}
	return count
}

// longestStreak scans ascending and tracks the maximum consecutive run. Pure
// historical scan, independent of today.
func longestStreak(days []string) int {
	longest, run := 0, 0
	var prevSet bool
	var prev string
	for _, d := range days {
		if prevSet && d == nextDay(prev) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev, prevSet = d, true
	}
	return longest
}

func nextDay(key string) string {
	t, err := ParseDayKey(key)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(DayKeyLayout)
}

// dedupeSorted returns the unique, parseable day keys in ascending order.
func dedupeSorted(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		if _, err := ParseDayKey(k); err != nil {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
