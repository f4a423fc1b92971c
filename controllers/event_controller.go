package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

// EventController manages attended tech events.
type EventController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewEventController creates a controller using the wall clock.
func NewEventController(db *gorm.DB) *EventController {
	return &EventController{db: db, clock: streak.SystemClock}
}

// ListEvents returns the user's events, most recent date first.
func (e *EventController) ListEvents(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40200, "unauthorized")
		return
	}

	var events []models.Event
	if err := e.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&events).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50100, "failed to load events")
		return
	}

	utils.Success(ctx, gin.H{"events": events})
}

// CreateEvent records an event and appends an event activity.
func (e *EventController) CreateEvent(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40201, "unauthorized")
		return
	}

	type request struct {
		Name        string `json:"name" binding:"required"`
		Type        string `json:"type"`
		Date        string `json:"date"`
		Location    string `json:"location"`
		IsVirtual   bool   `json:"is_virtual"`
		Description string `json:"description"`
		Takeaways   string `json:"takeaways"`
		URL         string `json:"url"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40101, "name is required")
		return
	}

	date, err := parseOptionalDate(req.Date, e.clock)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40102, "invalid date")
		return
	}

	event := models.Event{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Date:        date,
		Location:    strings.TrimSpace(req.Location),
		IsVirtual:   req.IsVirtual,
		Description: utils.Sanitize(req.Description),
		Takeaways:   utils.Sanitize(req.Takeaways),
		URL:         strings.TrimSpace(req.URL),
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return logActivity(tx, userID, streak.CategoryEvent, "attended", event.Name, date)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50101, "failed to create event")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"event": event})
}

// UpdateEvent edits an owned event in place.
func (e *EventController) UpdateEvent(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40202, "unauthorized")
		return
	}

	var event models.Event
	if err := e.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40500, "event not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50102, "failed to load event")
		return
	}

	type request struct {
		Name        *string `json:"name"`
		Type        *string `json:"type"`
		Location    *string `json:"location"`
		IsVirtual   *bool   `json:"is_virtual"`
		Description *string `json:"description"`
		Takeaways   *string `json:"takeaways"`
		URL         *string `json:"url"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40103, "invalid request payload")
		return
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		event.Name = strings.TrimSpace(*req.Name)
	}
	if req.Type != nil {
		event.Type = *req.Type
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}
	if req.IsVirtual != nil {
		event.IsVirtual = *req.IsVirtual
	}
	if req.Description != nil {
		event.Description = utils.Sanitize(*req.Description)
	}
	if req.Takeaways != nil {
		event.Takeaways = utils.Sanitize(*req.Takeaways)
	}
	if req.URL != nil {
		event.URL = strings.TrimSpace(*req.URL)
	}

	if err := e.db.Save(&event).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50103, "failed to update event")
		return
	}

	utils.Success(ctx, gin.H{"event": event})
}

// DeleteEvent removes an owned event.
func (e *EventController) DeleteEvent(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40203, "unauthorized")
		return
	}

	res := e.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).Delete(&models.Event{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50104, "failed to delete event")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40501, "event not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "event deleted"})
}
