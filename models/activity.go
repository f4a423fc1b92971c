package models

import "time"

// Activity is the append-only log every streak computation reads from.
// OccurredOn is pinned to UTC midnight of its calendar day so day keys
// extracted later can never drift across a day boundary; CreatedAt keeps the
// wall-clock moment for the recent-activity feed.
type Activity struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index:idx_activities_user_day;not null" json:"user_id"`
	Type       string    `gorm:"size:32;index;not null" json:"type"`
	Action     string    `gorm:"size:32;not null" json:"action"`
	Details    string    `gorm:"size:512" json:"details"`
	OccurredOn time.Time `gorm:"index:idx_activities_user_day;not null" json:"occurred_on"`
	CreatedAt  time.Time `json:"created_at"`
}
