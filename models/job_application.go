package models

import "time"

// JobApplication tracks one position through its pipeline stages.
type JobApplication struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Company     string     `gorm:"size:255;not null" json:"company"`
	Position    string     `gorm:"size:255;not null" json:"position"`
	Location    string     `gorm:"size:255" json:"location"`
	WorkType    string     `gorm:"size:16" json:"work_type"`
	Status      string     `gorm:"size:16;default:applied;index" json:"status"`
	AppliedDate *time.Time `json:"applied_date"`
	Salary      string     `gorm:"size:64" json:"salary"`
	Notes       string     `gorm:"size:2048" json:"notes"`
	URL         string     `gorm:"size:512" json:"url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
