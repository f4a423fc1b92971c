package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

// lookbackDays bounds per-category streak queries. Older data is excluded for
// performance, which caps longest-streak accuracy at one year.
const lookbackDays = 365

const recentFeedSize = 20

// ActivityController serves the activity log and streak aggregates.
type ActivityController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewActivityController creates a controller using the wall clock.
func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{db: db, clock: streak.SystemClock}
}

// GetStreaks returns the overall and per-category streaks for the current user.
func (a *ActivityController) GetStreaks(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40120, "unauthorized")
		return
	}

	since := a.clock.Now().UTC().AddDate(0, 0, -lookbackDays)

	var rows []models.Activity
	if err := a.db.Select("type", "occurred_on").
		Where("user_id = ? AND occurred_on >= ?", userID, since).
		Find(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to load activities")
		return
	}

	records := make([]streak.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, streak.Record{
			Category:   streak.Category(r.Type),
			OccurredOn: r.OccurredOn,
		})
	}

	streaks := streak.AggregateByCategory(records, a.clock)

	// Raw row count over the full history, not deduplicated by day.
	var total int64
	if err := a.db.Model(&models.Activity{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		total = 0
	}

	utils.Success(ctx, gin.H{
		"streak":             streaks.Overall,
		"streaks":            streaks.ByCategory,
		"has_activity_today": streak.ActiveToday(records, a.clock),
		"total_activities":   total,
	})
}

// RecordActivity appends one activity row. Pure append: aggregates are
// computed lazily on read, so no recomputation is triggered here.
func (a *ActivityController) RecordActivity(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40121, "unauthorized")
		return
	}

	type request struct {
		Type       string `json:"type" binding:"required"`
		Action     string `json:"action" binding:"required"`
		Details    string `json:"details"`
		OccurredOn string `json:"occurred_on"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, "type and action are required")
		return
	}

	occurred, err := parseOptionalDate(req.OccurredOn, a.clock)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40023, "invalid occurred_on date")
		return
	}

	if err := logActivity(a.db, userID, streak.Category(strings.TrimSpace(req.Type)), req.Action, req.Details, occurred); err != nil {
		if errors.Is(err, streak.ErrInvalidDate) {
			utils.Error(ctx, http.StatusBadRequest, 40023, "invalid occurred_on date")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to record activity")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"message": "activity recorded"})
}

// ListRecent returns the latest activities with human-readable relative times.
func (a *ActivityController) ListRecent(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40122, "unauthorized")
		return
	}

	var rows []models.Activity
	if err := a.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentFeedSize).
		Find(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load activities")
		return
	}

	now := a.clock.Now()
	items := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		items = append(items, gin.H{
			"id":         r.ID,
			"type":       r.Type,
			"action":     r.Action,
			"title":      activityTitle(r),
			"time":       relativeTime(now, r.CreatedAt),
			"created_at": r.CreatedAt,
		})
	}

	utils.Success(ctx, gin.H{"activities": items})
}

// activityTitle prefers the stored details, falling back to a generated label.
func activityTitle(a models.Activity) string {
	if a.Details != "" {
		return a.Details
	}

	typeLabels := map[string]string{
		"book":     "reading",
		"coding":   "coding session",
		"leetcode": "LeetCode problem",
		"gym":      "workout",
		"job":      "job application",
		"project":  "project",
		"event":    "event",
		"task":     "task",
	}
	actionLabels := map[string]string{
		"created":   "Added",
		"updated":   "Updated",
		"completed": "Completed",
		"started":   "Started",
		"logged":    "Logged",
		"solved":    "Solved",
	}

	typeLabel := a.Type
	if v, ok := typeLabels[a.Type]; ok {
		typeLabel = v
	}
	actionLabel := a.Action
	if v, ok := actionLabels[a.Action]; ok {
		actionLabel = v
	}
	return actionLabel + " " + typeLabel
}

func relativeTime(now, t time.Time) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "Just now"
	case mins == 1:
		return "1 minute ago"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case hours == 1:
		return "1 hour ago"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("Jan 2")
	}
}
