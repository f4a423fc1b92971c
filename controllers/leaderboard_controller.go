package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/config"
	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

const leaderboardCacheKey = "cache:leaderboard"

// LeaderboardController ranks every user by streak metrics. The full ranking
// is recomputed per request; the personal-scale dataset keeps that cheap, and
// a short redis TTL smooths bursts.
type LeaderboardController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewLeaderboardController creates a controller using the wall clock.
func NewLeaderboardController(db *gorm.DB) *LeaderboardController {
	return &LeaderboardController{db: db, clock: streak.SystemClock}
}

// GetLeaderboard returns every user ranked by current streak, longest streak
// and total activity count, with the requesting user flagged.
func (l *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	currentUserID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40130, "unauthorized")
		return
	}

	entries, total, err := l.rankedEntries()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to build leaderboard")
		return
	}

	items := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		items = append(items, gin.H{
			"rank":             e.Rank,
			"user_id":          e.UserID,
			"username":         e.Username,
			"avatar_url":       e.AvatarURL,
			"current_streak":   e.CurrentStreak,
			"longest_streak":   e.LongestStreak,
			"total_activities": e.TotalActivities,
			"active_today":     e.ActiveToday,
			"joined_at":        e.JoinedAt,
			"is_current_user":  e.UserID == currentUserID,
		})
	}

	utils.Success(ctx, gin.H{
		"leaderboard": items,
		"total_users": total,
	})
}

// rankedEntries loads every user's full activity history (no lookback cap,
// unlike per-category streaks) and ranks them. Results are cached briefly;
// the is_current_user flag is applied per request after the cache.
func (l *LeaderboardController) rankedEntries() ([]streak.Entry, int, error) {
	if b, ok := utils.CacheGetBytes(leaderboardCacheKey); ok {
		var cached []streak.Entry
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached, len(cached), nil
		}
	}

	var users []models.User
	if err := l.db.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	inputs := make([]streak.UserActivity, 0, len(users))
	for _, u := range users {
		var rows []models.Activity
		if err := l.db.Select("occurred_on").
			Where("user_id = ?", u.ID).
			Find(&rows).Error; err != nil {
			return nil, 0, err
		}
		dates := make([]time.Time, 0, len(rows))
		for _, r := range rows {
			dates = append(dates, r.OccurredOn)
		}
		inputs = append(inputs, streak.UserActivity{
			UserID:          u.ID,
			Username:        u.Username,
			AvatarURL:       u.AvatarURL,
			JoinedAt:        u.CreatedAt,
			Dates:           dates,
			TotalActivities: len(rows),
		})
	}

	entries := streak.Rank(inputs, l.clock)

	ttl := time.Duration(config.Get().LeaderboardCacheSec) * time.Second
	utils.CacheSetJSON(leaderboardCacheKey, entries, ttl)

	return entries, len(entries), nil
}
