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

// LeetCodeController manages problem CRUD and solve tracking.
type LeetCodeController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewLeetCodeController creates a controller using the wall clock.
func NewLeetCodeController(db *gorm.DB) *LeetCodeController {
	return &LeetCodeController{db: db, clock: streak.SystemClock}
}

func validDifficulty(d string) bool {
	return d == "easy" || d == "medium" || d == "hard"
}

func validLeetCodeStatus(s string) bool {
	return s == models.LeetCodeStatusNotStarted || s == models.LeetCodeStatusAttempted || s == models.LeetCodeStatusSolved
}

// ListProblems returns the user's problems, most recently updated first.
func (l *LeetCodeController) ListProblems(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40160, "unauthorized")
		return
	}

	q := l.db.Where("user_id = ?", userID)
	if status := strings.TrimSpace(ctx.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var problems []models.LeetCodeProblem
	if err := q.Order("updated_at DESC").Find(&problems).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to load problems")
		return
	}

	utils.Success(ctx, gin.H{"problems": problems})
}

// CreateProblem records a problem; a solved status also appends a leetcode
// activity so the solve counts toward streaks.
func (l *LeetCodeController) CreateProblem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40161, "unauthorized")
		return
	}

	type request struct {
		Title      string `json:"title" binding:"required"`
		Difficulty string `json:"difficulty" binding:"required"`
		Status     string `json:"status"`
		TimeSpent  int    `json:"time_spent"`
		Notes      string `json:"notes"`
		URL        string `json:"url"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40061, "title and difficulty are required")
		return
	}
	if !validDifficulty(req.Difficulty) {
		utils.Error(ctx, http.StatusBadRequest, 40062, "difficulty must be easy, medium or hard")
		return
	}
	if req.Status == "" {
		req.Status = models.LeetCodeStatusNotStarted
	}
	if !validLeetCodeStatus(req.Status) {
		utils.Error(ctx, http.StatusBadRequest, 40063, "invalid status")
		return
	}

	problem := models.LeetCodeProblem{
		UserID:     userID,
		Title:      strings.TrimSpace(req.Title),
		Difficulty: req.Difficulty,
		Status:     req.Status,
		TimeSpent:  req.TimeSpent,
		Notes:      utils.Sanitize(req.Notes),
		URL:        strings.TrimSpace(req.URL),
	}
	if req.Status == models.LeetCodeStatusSolved {
		now := l.clock.Now()
		problem.SolvedDate = &now
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&problem).Error; err != nil {
			return err
		}
		if problem.Status != models.LeetCodeStatusSolved {
			return nil
		}
		details := fmt.Sprintf("%s (%s)", problem.Title, problem.Difficulty)
		return logActivity(tx, userID, streak.CategoryLeetcode, "solved", details, l.clock.Now())
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50061, "failed to create problem")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"problem": problem})
}

// UpdateProblem edits an owned problem; a transition into solved appends the
// corresponding activity exactly once.
func (l *LeetCodeController) UpdateProblem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40162, "unauthorized")
		return
	}

	var problem models.LeetCodeProblem
	if err := l.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).First(&problem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40460, "problem not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, 50062, "failed to load problem")
		return
	}

	type request struct {
		Status    *string `json:"status"`
		TimeSpent *int    `json:"time_spent"`
		Notes     *string `json:"notes"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40064, "invalid request payload")
		return
	}

	wasSolved := problem.Status == models.LeetCodeStatusSolved
	if req.Status != nil {
		if !validLeetCodeStatus(*req.Status) {
			utils.Error(ctx, http.StatusBadRequest, 40063, "invalid status")
			return
		}
		problem.Status = *req.Status
	}
	if req.TimeSpent != nil {
		problem.TimeSpent = *req.TimeSpent
	}
	if req.Notes != nil {
		problem.Notes = utils.Sanitize(*req.Notes)
	}

	nowSolved := problem.Status == models.LeetCodeStatusSolved
	var solvedAt *time.Time
	if nowSolved && !wasSolved {
		now := l.clock.Now()
		solvedAt = &now
		problem.SolvedDate = solvedAt
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&problem).Error; err != nil {
			return err
		}
		if solvedAt == nil {
			return nil
		}
		details := fmt.Sprintf("%s (%s)", problem.Title, problem.Difficulty)
		return logActivity(tx, userID, streak.CategoryLeetcode, "solved", details, *solvedAt)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50063, "failed to update problem")
		return
	}

	utils.Success(ctx, gin.H{"problem": problem})
}

// DeleteProblem removes an owned problem.
func (l *LeetCodeController) DeleteProblem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40163, "unauthorized")
		return
	}

	res := l.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).Delete(&models.LeetCodeProblem{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50064, "failed to delete problem")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40461, "problem not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "problem deleted"})
}
