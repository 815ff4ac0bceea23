package models

import "time"

type DeliveryStatus string

const (
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
)

// Delivery is the assignment of an order to a delivery person.
type Delivery struct {
	ID                   uint           `gorm:"primaryKey"`
	OrderID              uint           `gorm:"not null;uniqueIndex"`
	DeliveryPersonID     uint           `gorm:"not null;index"`
	DeliveryPerson       User           `gorm:"foreignKey:DeliveryPersonID"`
	Status               DeliveryStatus `gorm:"size:32;not null;index"`
	DeliveryDate         *time.Time
	ExpectedDeliveryDate time.Time `gorm:"not null"`
	Notes                string    `gorm:"size:255"`
}
