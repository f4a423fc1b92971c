package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

// CodingController manages practice session CRUD.
type CodingController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewCodingController creates a controller using the wall clock.
func NewCodingController(db *gorm.DB) *CodingController {
	return &CodingController{db: db, clock: streak.SystemClock}
}

// ListSessions returns the user's sessions, newest first.
func (c *CodingController) ListSessions(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40150, "unauthorized")
		return
	}

	page, size := parsePagination(ctx.Query("page"), ctx.Query("page_size"))

	var sessions []models.CodingSession
	if err := c.db.Where("user_id = ?", userID).
		Order("date DESC").
		Offset((page - 1) * size).Limit(size).
		Find(&sessions).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50050, "failed to load sessions")
		return
	}

	utils.Success(ctx, gin.H{"sessions": sessions})
}

// CreateSession logs a session and appends a coding activity for streaks.
func (c *CodingController) CreateSession(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40151, "unauthorized")
		return
	}

	type request struct {
		Date     string `json:"date"`
		Duration int    `json:"duration" binding:"required,gt=0"`
		Language string `json:"language" binding:"required"`
		Topic    string `json:"topic" binding:"required"`
		Notes    string `json:"notes"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40051, "duration, language, and topic are required")
		return
	}

	date, err := parseOptionalDate(req.Date, c.clock)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40052, "invalid date")
		return
	}

	session := models.CodingSession{
		UserID:   userID,
		Date:     date,
		Duration: req.Duration,
		Language: strings.TrimSpace(req.Language),
		Topic:    strings.TrimSpace(req.Topic),
		Notes:    utils.Sanitize(req.Notes),
	}

	err = c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("%d min of %s: %s", session.Duration, session.Language, session.Topic)
		return logActivity(tx, userID, streak.CategoryCoding, "logged", details, date)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50051, "failed to create session")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"session": session})
}

// UpdateSession edits an owned session in place.
func (c *CodingController) UpdateSession(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40152, "unauthorized")
		return
	}

	var session models.CodingSession
	if err := c.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40450, "session not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50052, "failed to load session")
		return
	}

	type request struct {
		Duration *int    `json:"duration"`
		Language *string `json:"language"`
		Topic    *string `json:"topic"`
		Notes    *string `json:"notes"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40053, "invalid request payload")
		return
	}

	if req.Duration != nil && *req.Duration > 0 {
		session.Duration = *req.Duration
	}
	if req.Language != nil {
		session.Language = strings.TrimSpace(*req.Language)
	}
	if req.Topic != nil {
		session.Topic = strings.TrimSpace(*req.Topic)
	}
	if req.Notes != nil {
		session.Notes = utils.Sanitize(*req.Notes)
	}

	if err := c.db.Save(&session).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50053, "failed to update session")
		return
	}

	utils.Success(ctx, gin.H{"session": session})
}

// DeleteSession removes an owned session.
func (c *CodingController) DeleteSession(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40153, "unauthorized")
		return
	}

	res := c.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).Delete(&models.CodingSession{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50054, "failed to delete session")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40451, "session not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "session deleted"})
}
