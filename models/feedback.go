package models

import "time"

type Feedback struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	OrderID   uint   `gorm:"not null;uniqueIndex"`
	Rating    int    `gorm:"not null"`
	Comments  string `gorm:"size:1000"`
	CreatedAt time.Time
}
