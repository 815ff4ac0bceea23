package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer       UserRole = "CUSTOMER"
	RoleAdmin          UserRole = "ADMIN"
	RoleDeliveryPerson UserRole = "DELIVERY_PERSON"
)

// Roles lists every role in a stable order.
var Roles = []UserRole{RoleCustomer, RoleAdmin, RoleDeliveryPerson}

func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDeliveryPerson:
		return true
	}
	return false
}

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string   `gorm:"not null"`
	Email        string   `gorm:"size:191;not null"`
	PhoneNumber  string   `gorm:"size:32"`
	Address      string   `gorm:"size:255"`
	Role         UserRole `gorm:"size:32;not null;default:'CUSTOMER'"`
	Orders       []Order  `gorm:"foreignKey:UserID"`
	CreatedAt    time.Time
}
