package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
)

func TestParseOptionalDate(t *testing.T) {
	clock := streak.FixedClock{T: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)}

	t.Run("empty means now", func(t *testing.T) {
		got, err := parseOptionalDate("", clock)
		require.NoError(t, err)
		assert.Equal(t, clock.T, got)
	})

	t.Run("day key", func(t *testing.T) {
		got, err := parseOptionalDate("2026-03-10", clock)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := parseOptionalDate("2026-03-10T08:00:00Z", clock)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), got)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := parseOptionalDate("not-a-date", clock)
		assert.ErrorIs(t, err, streak.ErrInvalidDate)
	})

	t.Run("impossible calendar date rejected", func(t *testing.T) {
		_, err := parseOptionalDate("2026-02-30", clock)
		assert.ErrorIs(t, err, streak.ErrInvalidDate)
	})
}

func TestParsePagination(t *testing.T) {
	page, size := parsePagination("", "")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = parsePagination("3", "50")
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, size)

	page, size = parsePagination("-1", "1000")
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", relativeTime(now, now.Add(-30*time.Second)))
	assert.Equal(t, "5 minutes ago", relativeTime(now, now.Add(-5*time.Minute)))
	assert.Equal(t, "2 hours ago", relativeTime(now, now.Add(-2*time.Hour)))
	assert.Equal(t, "Yesterday", relativeTime(now, now.Add(-25*time.Hour)))
	assert.Equal(t, "3 days ago", relativeTime(now, now.Add(-73*time.Hour)))
	assert.Equal(t, "Feb 1", relativeTime(now, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)))
}

func TestActivityTitle(t *testing.T) {
	withDetails := models.Activity{Type: "coding", Action: "logged", Details: "90 min of Go: generics"}
	assert.Equal(t, "90 min of Go: generics", activityTitle(withDetails))

	bare := models.Activity{Type: "leetcode", Action: "solved"}
	assert.Equal(t, "Solved LeetCode problem", activityTitle(bare))

	unknown := models.Activity{Type: "gardening", Action: "watered"}
	assert.Equal(t, "watered gardening", activityTitle(unknown))
}
