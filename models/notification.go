package models

import "time"

// Notification is a derived reminder row. Rows are produced by an explicit
// generate operation, never as a side effect of reading the list.
type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	Type      string     `gorm:"size:32;not null" json:"type"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Message   string     `gorm:"size:1024" json:"message"`
	Icon      string     `gorm:"size:16" json:"icon"`
	Link      string     `gorm:"size:255" json:"link"`
	Priority  string     `gorm:"size:16;default:normal" json:"priority"`
	IsRead    bool       `gorm:"default:false;index" json:"is_read"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}
