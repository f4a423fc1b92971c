package models

import "time"

// CodingSession is one logged practice session, duration in minutes.
type CodingSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	Duration  int       `gorm:"not null" json:"duration"`
	Language  string    `gorm:"size:64;not null" json:"language"`
	Topic     string    `gorm:"size:255;not null" json:"topic"`
	Notes     string    `gorm:"size:1024" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
