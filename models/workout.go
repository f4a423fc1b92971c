package models

import "time"

// Workout is one exercise entry, upserted per (user, date, type) so repeated
// logging on the same day updates progress instead of stacking rows.
type Workout struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"uniqueIndex:idx_workouts_user_date_type;not null" json:"user_id"`
	Date         time.Time `gorm:"uniqueIndex:idx_workouts_user_date_type;not null" json:"date"`
	ExerciseType string    `gorm:"size:64;uniqueIndex:idx_workouts_user_date_type;not null" json:"exercise_type"`
	Target       int       `gorm:"not null" json:"target"`
	Completed    int       `gorm:"default:0" json:"completed"`
	IsCompleted  bool      `gorm:"default:false;index" json:"is_completed"`
	Notes        string    `gorm:"size:1024" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
