package entities

import "time"

// MediaItem represents the persisted media row.
type MediaItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Kind        string    `gorm:"type:varchar(16);not null"`
	URL         string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (MediaItem) TableName() string {
	return "media_items"
}
