package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devsultan06/myjourney2026/models"
	"github.com/devsultan06/myjourney2026/streak"
	"github.com/devsultan06/myjourney2026/utils"
)

// WorkoutController manages gym entries. Entries are upserted per
// (user, date, exercise type) so repeated logging updates progress.
type WorkoutController struct {
	db    *gorm.DB
	clock streak.Clock
}

// NewWorkoutController creates a controller using the wall clock.
func NewWorkoutController(db *gorm.DB) *WorkoutController {
	return &WorkoutController{db: db, clock: streak.SystemClock}
}

// ListWorkouts returns the user's workouts, newest first.
func (w *WorkoutController) ListWorkouts(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40170, "unauthorized")
		return
	}

	var workouts []models.Workout
	if err := w.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&workouts).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50070, "failed to load workouts")
		return
	}

	utils.Success(ctx, gin.H{"workouts": workouts})
}

// UpsertWorkout creates or updates the entry for (date, exercise type) and
// appends a gym activity for streaks.
func (w *WorkoutController) UpsertWorkout(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40171, "unauthorized")
		return
	}

	type request struct {
		Date         string `json:"date"`
		ExerciseType string `json:"exercise_type" binding:"required"`
		Target       int    `json:"target" binding:"required,gt=0"`
		Completed    int    `json:"completed"`
		IsCompleted  *bool  `json:"is_completed"`
		Notes        string `json:"notes"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40071, "exercise_type and target are required")
		return
	}

	date, err := parseOptionalDate(req.Date, w.clock)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40072, "invalid date")
		return
	}
	pinned, err := streak.PinToDay(date)
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40072, "invalid date")
		return
	}

	done := req.Completed >= req.Target
	if req.IsCompleted != nil {
		done = *req.IsCompleted
	}

	workout := models.Workout{
		UserID:       userID,
		Date:         pinned,
		ExerciseType: strings.TrimSpace(req.ExerciseType),
		Target:       req.Target,
		Completed:    req.Completed,
		IsCompleted:  done,
		Notes:        utils.Sanitize(req.Notes),
	}

	action := "logged"
	if done {
		action = "completed"
	}

	err = w.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "exercise_type"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"target", "completed", "is_completed", "notes", "updated_at",
			}),
		}).Create(&workout).Error; err != nil {
			return err
		}
		details := fmt.Sprintf("%s: %d/%d", workout.ExerciseType, workout.Completed, workout.Target)
		return logActivity(tx, userID, streak.CategoryGym, action, details, pinned)
	})
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50071, "failed to save workout")
		return
	}

	utils.Respond(ctx, http.StatusCreated, 0, "success", gin.H{"workout": workout})
}

// DeleteWorkout removes an owned workout entry.
func (w *WorkoutController) DeleteWorkout(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40172, "unauthorized")
		return
	}

	res := w.db.Where("id = ? AND user_id = ?", ctx.Param("id"), userID).Delete(&models.Workout{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50072, "failed to delete workout")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, 40470, "workout not found")
		return
	}

	utils.Success(ctx, gin.H{"message": "workout deleted"})
}
