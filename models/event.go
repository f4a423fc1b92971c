package models

import "time"

// Event is an attended conference, meetup, workshop or similar.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Type        string    `gorm:"size:32" json:"type"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Location    string    `gorm:"size:255" json:"location"`
	IsVirtual   bool      `gorm:"default:false" json:"is_virtual"`
	Description string    `gorm:"size:2048" json:"description"`
	Takeaways   string    `gorm:"size:2048" json:"takeaways"`
	URL         string    `gorm:"size:512" json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
