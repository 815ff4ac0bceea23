package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentOnline         PaymentMethod = "ONLINE"
	PaymentCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

type Payment struct {
	ID          uint            `gorm:"primaryKey"`
	OrderID     uint            `gorm:"not null;uniqueIndex"`
	UserID      uint            `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Method      PaymentMethod   `gorm:"size:32"`
	Status      PaymentStatus   `gorm:"size:32"`
	PaymentDate *time.Time
	CreatedAt   time.Time
}
