// Package models holds the persistence structs. They carry storage tags
// only; wire shapes live in package dto.
package models

// All returns every persisted model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Cylinder{},
		&Order{},
		&Delivery{},
		&Payment{},
		&Feedback{},
	}
}
