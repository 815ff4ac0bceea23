// Package dto holds the JSON shapes of the HTTP API and the pure
// functions that map persistence models onto them.
package dto

import "github.com/shopspring/decimal"

// `binding` tags are checked by gin when the body is bound; `validate`
// tags are checked by the workflows so the rules hold for every caller.

type SignupRequest struct {
	Username    string `json:"username" validate:"required,max=64"`
	Password    string `json:"password" validate:"required,max=72"`
	Email       string `json:"email" binding:"omitempty,email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=32"`
	Address     string `json:"address" validate:"required,max=255"`
}

// StaffAccountRequest creates an ADMIN or DELIVERY_PERSON account.
type StaffAccountRequest struct {
	SignupRequest
	Role string `json:"role" binding:"required"`
}

type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CylinderRequest struct {
	Type          string          `json:"type" binding:"required"`
	Weight        float64         `json:"weight"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
}

// OrderRequest is used for both placing and modifying an order.
type OrderRequest struct {
	CylinderType string  `json:"cylinderType"`
	Capacity     float64 `json:"capacity"`
	Quantity     int     `json:"quantity"`
}

type FeedbackRequest struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments" binding:"max=1000"`
}
