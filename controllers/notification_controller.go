package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

const notificationRetentionDays = 30

// NotificationController serves derived reminder rows. Rows are only written
// by the explicit generate endpoint, so listing is always a pure read.
type NotificationController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewNotificationController creates a controller using the wall clock.
func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{db: db, clock: streak.SystemClock}
}

// ListNotifications returns the user's notifications plus the unread count.
func (n *NotificationController) ListNotifications(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40220, "unauthorized")
		return
	}

	now := n.clock.Now()
	q := n.db.Where("user_id = ?", userID).
		Where("expires_at IS NULL OR expires_at > ?", now)

	var notifications []models.Notification
	if err := q.Order("created_at DESC").Find(&notifications).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50120, "failed to load notifications")
		return
	}

	unread := 0
	for _, item := range notifications {
		if !item.IsRead {
			unread++
		}
	}

	utils.Success(ctx, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// GenerateNotifications derives reminder rows for the current day. Each rule
// writes at most one row per user per day, so repeated calls are no-ops.
func (n *NotificationController) GenerateNotifications(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40221, "unauthorized")
		return
	}

	now := n.clock.Now()
	today, err := streak.PinToDay(now)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50121, "failed to generate notifications")
		return
	}

	records, err := n.recentRecords(userID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50121, "failed to generate notifications")
		return
	}

	activeToday := streak.ActiveToday(records, n.clock)
	streaks := streak.AggregateByCategory(records, n.clock)

	created := 0
	endOfDay := today.AddDate(0, 0, 1)

	if !activeToday {
		if streaks.Overall.Current > 0 {
			ok, err := n.createOncePerDay(userID, today, models.Notification{
				UserID:    userID,
				Type:      "streak_risk",
				Title:     "Your streak is at risk",
				Message:   fmt.Sprintf("Log something today to keep your %d-day streak alive.", streaks.Overall.Current),
				Icon:      "🔥",
				Link:      "/dashboard",
				Priority:  "high",
				ExpiresAt: &endOfDay,
			})
			if err != nil {
				utils.Error(ctx, http.StatusInternalServerError, 50122, "failed to generate notifications")
				return
			}
			if ok {
				created++
			}
		} else {
			ok, err := n.createOncePerDay(userID, today, models.Notification{
				UserID:    userID,
				Type:      "no_activity",
				Title:     "Nothing logged today",
				Message:   "Start a new streak with any activity.",
				Icon:      "📝",
				Link:      "/dashboard",
				Priority:  "normal",
				ExpiresAt: &endOfDay,
			})
			if err != nil {
				utils.Error(ctx, http.StatusInternalServerError, 50122, "failed to generate notifications")
				return
			}
			if ok {
				created++
			}
		}
	}

	// Weekly recap lands on the first day of the week.
	if streak.WeekStart(n.clock).Equal(today) {
		ok, err := n.createOncePerDay(userID, today, models.Notification{
			UserID:   userID,
			Type:     "weekly_recap",
			Title:    "New week, fresh start",
			Message:  fmt.Sprintf("Last week is in the books. Longest streak so far: %d days.", streaks.Overall.Longest),
			Icon:     "📅",
			Link:     "/stats",
			Priority: "normal",
		})
		if err != nil {
			utils.Error(ctx, http.StatusInternalServerError, 50122, "failed to generate notifications")
			return
		}
		if ok {
			created++
		}
	}

	utils.Success(ctx, gin.H{"generated": created})
}

// MarkRead marks the given notification ids as read, or everything when the
// list is empty.
func (n *NotificationController) MarkRead(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40222, "unauthorized")
		return
	}

	type request struct {
		IDs []uint `json:"ids"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.Error(ctx, http.StatusBadRequest, 40121, "invalid request payload")
		return
	}

	q := n.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if len(req.IDs) > 0 {
		q = q.Where("id IN ?", req.IDs)
	}

	res := q.Update("is_read", true)
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50123, "failed to mark notifications read")
		return
	}

	utils.Success(ctx, gin.H{"updated": res.RowsAffected})
}

// PurgeNotifications deletes rows that are expired or past retention.
func (n *NotificationController) PurgeNotifications(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40223, "unauthorized")
		return
	}

	now := n.clock.Now()
	cutoff := now.AddDate(0, 0, -notificationRetentionDays)

	res := n.db.Where("user_id = ?", userID).
		Where("(expires_at IS NOT NULL AND expires_at <= ?) OR created_at <= ?", now, cutoff).
		Delete(&models.Notification{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50124, "failed to purge notifications")
		return
	}

	utils.Success(ctx, gin.H{"deleted": res.RowsAffected})
}

// recentRecords loads the user's activity rows inside the streak lookback.
func (n *NotificationController) recentRecords(userID uint) ([]streak.Record, error) {
	since := n.clock.Now().AddDate(0, 0, -lookbackDays)

	var rows []models.Activity
	if err := n.db.Select("type, occurred_on").
		Where("user_id = ? AND occurred_on >= ?", userID, since).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]streak.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, streak.Record{
			Category:   streak.Category(r.Type),
			OccurredOn: r.OccurredOn,
		})
	}
	return records, nil
}

// createOncePerDay inserts the row unless one of the same type already exists
// for the given day. Reports whether a row was written.
func (n *NotificationController) createOncePerDay(userID uint, day time.Time, row models.Notification) (bool, error) {
	var count int64
	if err := n.db.Model(&models.Notification{}).
		Where("user_id = ? AND type = ? AND created_at >= ? AND created_at < ?",
			userID, row.Type, day, day.AddDate(0, 0, 1)).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := n.db.Create(&row).Error; err != nil {
		return false, err
	}
	return true, nil
}
