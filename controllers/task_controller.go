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

// TaskController manages daily to-dos. Tasks do not feed the activity log;
// they are checklist items, not tracked habits.
type TaskController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewTaskController creates a controller using the wall clock.
func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{db: db, clock: streak.SystemClock}
}

// ListTasks returns the user's tasks, open items first, then newest.
func (t *TaskController) ListTasks(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40210, "unauthorized")
		return
	}

	var tasks []models.Task
	if err := t.db.Where("user_id = ?", userID).
		Order("completed ASC, created_at DESC").
		Find(&tasks).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50110, "failed to load tasks")
		return
	}

	utils.Success(ctx, gin.H{"tasks": tasks})
}

// CreateTask adds a to-do item.
func (t *TaskController) CreateTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40211, "unauthorized")
		return
	}

	type request struct {
		Title   string `json:"title" binding:"required"`
		DueDate string `json:"due_date"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40111, "title is required")
		return
	}

	task := models.Task{
		UserID: userID,
		Title:  strings.TrimSpace(req.Title),
	}
	if req.DueDate != "" {
		due, err := parseOptionalDate(req.DueDate, t.clock)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40112, "invalid due_date")
			return
		}
		task.DueDate = &due
	}

	if err := t.db.Create(&task).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50111, "failed to create task")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"task": task})
}

// ToggleTask flips the completed flag on an owned task.
func (t *TaskController) ToggleTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40212, "unauthorized")
		return
	}

	var task models.Task
	if err := t.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40510, "task not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50112, "failed to load task")
		return
	}

	task.Completed = !task.Completed
	if err := t.db.Save(&task).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50113, "failed to update task")
		return
	}

	utils.Success(ctx, gin.H{"task": task})
}

// DeleteTask removes an owned task.
func (t *TaskController) DeleteTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40213, "unauthorized")
		return
	}

	res := t.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).Delete(&models.Task{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50114, "failed to delete task")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40511, "task not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "task deleted"})
}
