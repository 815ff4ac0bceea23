package dto

import (
	"time"

	"lpg-delivery-api/models"
)

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func ToOrder(o models.Order) Order {
	return Order{
		OrderID:      o.ID,
		CylinderType: string(o.CylinderType),
		Capacity:     o.Capacity,
		Quantity:     o.Quantity,
		TotalPrice:   o.TotalPrice,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate.UTC(),
		DeliveryDate: utcPtr(o.DeliveryDate),
	}
}

func ToOrders(orders []models.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrder(o))
	}
	return out
}

func ToUserInfo(u models.User) UserInfo {
	return UserInfo{
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
	}
}

func ToProfile(u models.User) Profile {
	return Profile{UserInfo: ToUserInfo(u), Role: string(u.Role)}
}

// ToOrderDetails wraps one user's orders. Identity info is taken from
// owner and only attached when includeUser is set.
func ToOrderDetails(owner models.User, orders []models.Order, includeUser bool) OrderDetails {
	d := OrderDetails{Order: ToOrders(orders)}
	if includeUser {
		info := ToUserInfo(owner)
		d.UserInfo = &info
	}
	return d
}

// GroupByOwner splits orders into one OrderDetails per owning user, in
// order of first appearance. Every group carries identity info; orders
// must have their User preloaded.
func GroupByOwner(orders []models.Order) []OrderDetails {
	out := []OrderDetails{}
	index := map[uint]int{}
	for _, o := range orders {
		i, ok := index[o.UserID]
		if !ok {
			info := ToUserInfo(o.User)
			out = append(out, OrderDetails{UserInfo: &info, Order: []Order{}})
			i = len(out) - 1
			index[o.UserID] = i
		}
		out[i].Order = append(out[i].Order, ToOrder(o))
	}
	return out
}

func ToCylinder(c models.Cylinder) Cylinder {
	return Cylinder{
		CylinderType:  string(c.Type),
		Weight:        c.Weight,
		Price:         c.Price,
		StockQuantity: c.StockQuantity,
	}
}

func ToCylinders(cs []models.Cylinder) []Cylinder {
	out := make([]Cylinder, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToCylinder(c))
	}
	return out
}

func ToDelivery(d models.Delivery) Delivery {
	return Delivery{
		OrderID:              d.OrderID,
		DeliveryPerson:       d.DeliveryPerson.Username,
		Status:               string(d.Status),
		ExpectedDeliveryDate: d.ExpectedDeliveryDate.UTC(),
		DeliveryDate:         utcPtr(d.DeliveryDate),
		Notes:                d.Notes,
	}
}

func ToFeedback(f models.Feedback) Feedback {
	return Feedback{OrderID: f.OrderID, Rating: f.Rating, Comments: f.Comments}
}
