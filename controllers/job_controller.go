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

// JobController manages the job application pipeline.
type JobController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewJobController creates a controller using the wall clock.
func NewJobController(db *gorm.DB) *JobController {
	return &JobController{db: db, clock: streak.SystemClock}
}

// ListApplications returns the user's applications, newest first, optionally
// filtered by status.
func (j *JobController) ListApplications(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40190, "unauthorized")
		return
	}

	q := j.db.Where("user_id = ?", userID)
	if status := strings.TrimSpace(ctx.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []models.JobApplication
	if err := q.Order("created_at DESC").Find(&apps).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50090, "failed to load applications")
		return
	}

	utils.Success(ctx, gin.H{"applications": apps})
}

// CreateApplication records an application and appends a job activity.
func (j *JobController) CreateApplication(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40191, "unauthorized")
		return
	}

	type request struct {
		Company     string `json:"company" binding:"required"`
		Position    string `json:"position" binding:"required"`
		Location    string `json:"location"`
		WorkType    string `json:"work_type"`
		Status      string `json:"status"`
		AppliedDate string `json:"applied_date"`
		Salary      string `json:"salary"`
		Notes       string `json:"notes"`
		URL         string `json:"url"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40091, "company and position are required")
		return
	}
	if req.Status == "" {
		req.Status = "applied"
	}

	applied, err := parseOptionalDate(req.AppliedDate, j.clock)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40092, "invalid applied_date")
		return
	}

	app := models.JobApplication{
		UserID:      userID,
		Company:     strings.TrimSpace(req.Company),
		Position:    strings.TrimSpace(req.Position),
		Location:    strings.TrimSpace(req.Location),
		WorkType:    req.WorkType,
		Status:      req.Status,
		AppliedDate: &applied,
		Salary:      strings.TrimSpace(req.Salary),
		Notes:       utils.Sanitize(req.Notes),
		URL:         strings.TrimSpace(req.URL),
	}

	err = j.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("%s at %s", app.Position, app.Company)
		return logActivity(tx, userID, streak.CategoryJob, "applied", details, applied)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50091, "failed to create application")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"application": app})
}

// UpdateApplication edits an owned application, typically moving it through
// pipeline stages.
func (j *JobController) UpdateApplication(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40192, "unauthorized")
		return
	}

	var app models.JobApplication
	if err := j.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40490, "application not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50092, "failed to load application")
		return
	}

	type request struct {
		Status   *string `json:"status"`
		Location *string `json:"location"`
		WorkType *string `json:"work_type"`
		Salary   *string `json:"salary"`
		Notes    *string `json:"notes"`
		URL      *string `json:"url"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40093, "invalid request payload")
		return
	}

	if req.Status != nil {
		app.Status = *req.Status
	}
	if req.Location != nil {
		app.Location = strings.TrimSpace(*req.Location)
	}
	if req.WorkType != nil {
		app.WorkType = *req.WorkType
	}
	if req.Salary != nil {
		app.Salary = strings.TrimSpace(*req.Salary)
	}
	if req.Notes != nil {
		app.Notes = utils.Sanitize(*req.Notes)
	}
	if req.URL != nil {
		app.URL = strings.TrimSpace(*req.URL)
	}

	if err := j.db.Save(&app).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50093, "failed to update application")
		return
	}

	utils.Success(ctx, gin.H{"application": app})
}

// DeleteApplication removes an owned application.
func (j *JobController) DeleteApplication(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40193, "unauthorized")
		return
	}

	res := j.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).Delete(&models.JobApplication{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50094, "failed to delete application")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40491, "application not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "application deleted"})
}
