package models

import "time"

// Book reading states.
const (
	BookStatusNotStarted = "not-started"
	BookStatusReading    = "reading"
	BookStatusCompleted  = "completed"
)

// Book tracks reading progress by page position.
type Book struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	Title         string     `gorm:"size:255;not null" json:"title"`
	Author        string     `gorm:"size:255" json:"author"`
	TotalPages    int        `gorm:"not null" json:"total_pages"`
	CurrentPage   int        `gorm:"default:0" json:"current_page"`
	Status        string     `gorm:"size:16;default:not-started" json:"status"`
	StartDate     *time.Time `json:"start_date"`
	CompletedDate *time.Time `json:"completed_date"`
	Notes         string     `gorm:"size:2048" json:"notes"`
	Rating        int        `json:"rating"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
