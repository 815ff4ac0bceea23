package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a cylinder order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusInTransit OrderStatus = "IN_TRANSIT"
	StatusDelivered OrderStatus = "DELIVERED"
)

type Order struct {
	ID           uint            `gorm:"primaryKey"`
	UserID       uint            `gorm:"not null;index"`
	User         User            `gorm:"foreignKey:UserID"`
	CylinderType CylinderType    `gorm:"size:32;not null"`
	Capacity     float64         `gorm:"not null"`
	Quantity     int             `gorm:"not null"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status       OrderStatus     `gorm:"size:32;not null;default:'PENDING';index"`
	OrderDate    time.Time       `gorm:"not null;index"`
	DeliveryDate *time.Time
	Delivery     *Delivery `gorm:"foreignKey:OrderID"`
	Payment      *Payment  `gorm:"foreignKey:OrderID"`
	Feedback     *Feedback `gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time
}
