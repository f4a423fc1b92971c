package models

import "time"

// LeetCode problem lifecycle states.
const (
	LeetCodeStatusNotStarted = "not-started"
	LeetCodeStatusAttempted  = "attempted"
	LeetCodeStatusSolved     = "solved"
)

// LeetCodeProblem tracks one problem and its solve state.
type LeetCodeProblem struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	Difficulty string     `gorm:"size:16;not null" json:"difficulty"`
	Status     string     `gorm:"size:16;default:not-started" json:"status"`
	SolvedDate *time.Time `gorm:"index" json:"solved_date"`
	TimeSpent  int        `json:"time_spent"`
	Notes      string     `gorm:"size:1024" json:"notes"`
	URL        string     `gorm:"size:512" json:"url"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
