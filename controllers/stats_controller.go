package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

// StatsController serves site-wide counters and the per-user weekly summary.
type StatsController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewStatsController creates a controller using the wall clock.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db, clock: streak.SystemClock}
}

// GetStats returns aggregate statistics for the whole site.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount int64
	var activityCount int64
	var dailyActive int64

	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		userCount = 0
	}
	if err := s.db.Model(&models.Activity{}).Count(&activityCount).Error; err != nil {
		activityCount = 0
	}

	// Users with at least one activity pinned to the current UTC day.
	today, err := streak.ParseDayKey(streak.Today(s.clock))
	if err == nil {
		if err := s.db.Model(&models.Activity{}).
			Where("occurred_on = ?", today).
			Distinct("user_id").
			Count(&dailyActive).Error; err != nil {
			dailyActive = 0
		}
	}

	utils.Success(ctx, gin.H{
		"user_count":         userCount,
		"activity_count":     activityCount,
		"daily_active_count": dailyActive,
	})
}

// GetWeeklySummary sums the current user's activity inside the current week
// (week start = most recent Sunday, inclusive).
func (s *StatsController) GetWeeklySummary(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40140, "unauthorized")
		return
	}

	weekStart := streak.WeekStart(s.clock)

	var minutes []int
	if err := s.db.Model(&models.CodingSession{}).
		Where("user_id = ? AND date >= ?", userID, weekStart).
		Pluck("duration", &minutes).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50040, "failed to load coding sessions")
		return
	}

	var solved int64
	if err := s.db.Model(&models.LeetCodeProblem{}).
		Where("user_id = ? AND status = ? AND solved_date >= ?", userID, models.LeetCodeStatusSolved, weekStart).
		Count(&solved).Error; err != nil {
		solved = 0
	}

	var workouts int64
	if err := s.db.Model(&models.Workout{}).
		Where("user_id = ? AND is_completed = ? AND date >= ?", userID, true, weekStart).
		Count(&workouts).Error; err != nil {
		workouts = 0
	}

	// Book activity count stands in for pages read; page-level weekly
	// progress is not tracked.
	var reading int64
	if err := s.db.Model(&models.Activity{}).
		Where("user_id = ? AND type = ? AND occurred_on >= ?", userID, string(streak.CategoryBook), weekStart).
		Count(&reading).Error; err != nil {
		reading = 0
	}

	summary := streak.SummarizeWeek(streak.WeeklyInput{
		CodingMinutes:     minutes,
		LeetcodeSolved:    int(solved),
		WorkoutsCompleted: int(workouts),
		ReadingActivities: int(reading),
	})

	utils.Success(ctx, gin.H{
		"weekly_stats": summary,
		"week_start":   weekStart,
	})
}
