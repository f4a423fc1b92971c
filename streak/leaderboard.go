package streak

import (
	"sort"
	"time"
)

// UserActivity is one user's complete activity history as supplied by the
// persistence layer. Unlike per-category streaks there is no lookback cap.
type UserActivity struct {
	UserID          uint
	Username        string
	AvatarURL       string
	JoinedAt        time.Time
	Dates           []time.Time
	TotalActivities int
}

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank            int       `json:"rank"`
	UserID          uint      `json:"user_id"`
	Username        string    `json:"username"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	CurrentStreak   int       `json:"current_streak"`
	LongestStreak   int       `json:"longest_streak"`
	TotalActivities int       `json:"total_activities"`
	ActiveToday     bool      `json:"active_today"`
	JoinedAt        time.Time `json:"joined_at"`
}

// Rank computes streak metrics for every user and produces a total order:
// current streak desc, longest streak desc, total activities desc, then user
// ID asc so repeated calls over identical input yield identical output. Ranks
// are 1-based and distinct even for full ties.
func Rank(users []UserActivity, clock Clock) []Entry {
	today := Today(clock)
	yesterday := Yesterday(clock)

	entries := make([]Entry, 0, len(users))
	for _, u := range users {
		keys := make([]string, 0, len(u.Dates))
		active := false
		for _, d := range u.Dates {
			key, err := DayKey(d)
			if err != nil {
				continue
			}
			keys = append(keys, key)
			if key == today {
				active = true
			}
		}
		res := Calculate(keys, today, yesterday)
		entries = append(entries, Entry{
			UserID:          u.UserID,
			Username:        u.Username,
			AvatarURL:       u.AvatarURL,
			CurrentStreak:   res.Current,
			LongestStreak:   res.Longest,
			TotalActivities: u.TotalActivities,
			ActiveToday:     active,
			JoinedAt:        u.JoinedAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.CurrentStreak != b.CurrentStreak {
			return a.CurrentStreak > b.CurrentStreak
		}
		if a.LongestStreak != b.LongestStreak {
			return a.LongestStreak > b.LongestStreak
		}
		if a.TotalActivities != b.TotalActivities {
			return a.TotalActivities > b.TotalActivities
		}
		return a.UserID < b.UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
