package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID      uint            `json:"orderId"`
	CylinderType string          `json:"cylinderType"`
	Capacity     float64         `json:"capacity"`
	Quantity     int             `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"orderDate"`
	DeliveryDate *time.Time      `json:"deliveryDate,omitempty"`
}

type UserInfo struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// OrderDetails is one user's order list, with identity info when the
// caller is entitled to it.
type OrderDetails struct {
	UserInfo *UserInfo `json:"userInfo,omitempty"`
	Order    []Order   `json:"order"`
}

type Cylinder struct {
	CylinderType  string          `json:"cylinderType"`
	Weight        float64         `json:"weight"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
}

type Delivery struct {
	OrderID              uint       `json:"orderId"`
	DeliveryPerson       string     `json:"deliveryPerson"`
	Status               string     `json:"status"`
	ExpectedDeliveryDate time.Time  `json:"expectedDeliveryDate"`
	DeliveryDate         *time.Time `json:"deliveryDate,omitempty"`
	Notes                string     `json:"notes,omitempty"`
}

type Feedback struct {
	OrderID  uint   `json:"orderId"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments,omitempty"`
}

type Token struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Profile struct {
	UserInfo
	Role string `json:"role"`
}

// Message is the payload of operations that only confirm success.
type Message struct {
	Message string `json:"message"`
}
