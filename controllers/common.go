package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/middleware"
	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(ctx *gin.Context) (uint, bool) {
	v, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case float64:
		return uint(id), true
	default:
		return 0, false
	}
}

// logActivity appends one activity row pinned to the UTC calendar day of
// occurredOn. Streaks are derived lazily on read, so this is a pure append.
func logActivity(tx *gorm.DB, userID uint, category streak.Category, action, details string, occurredOn time.Time) error {
	pinned, err := streak.PinToDay(occurredOn)
	if err != nil {
		return err
	}
	return tx.Create(&models.Activity{
		UserID:     userID,
		Type:       string(category),
		Action:     action,
		Details:    utils.Sanitize(details),
		OccurredOn: pinned,
	}).Error
}

// parseOptionalDate accepts empty (meaning now), YYYY-MM-DD, or RFC3339.
func parseOptionalDate(raw string, clock streak.Clock) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clock.Now(), nil
	}
	if t, err := time.ParseInLocation(streak.DayKeyLayout, raw, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, streak.ErrInvalidDate
}

func parsePagination(pageStr, sizeStr string) (int, int) {
	page, size := 1, 20
	if v := strings.TrimSpace(pageStr); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := strings.TrimSpace(sizeStr); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			size = n
		}
	}
	return page, size
}
