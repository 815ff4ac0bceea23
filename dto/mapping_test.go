package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"lpg-delivery-api/models"

	"github.com/shopspring/decimal"
)

func order(id, userID uint, user string) models.Order {
	return models.Order{
		ID:           id,
		UserID:       userID,
		User:         models.User{ID: userID, Username: user, Email: user + "@example.com", PhoneNumber: "9", Address: "street"},
		CylinderType: models.CylinderDomestic,
		Capacity:     14.5,
		Quantity:     2,
		TotalPrice:   decimal.NewFromInt(2000),
		Status:       models.StatusPending,
		OrderDate:    time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestGroupByOwner(t *testing.T) {
	groups := GroupByOwner([]models.Order{
		order(1, 1, "alice"),
		order(2, 1, "alice"),
		order(3, 2, "bob"),
	})
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].UserInfo == nil || groups[0].UserInfo.Username != "alice" || len(groups[0].Order) != 2 {
		t.Errorf("Unexpected first group: %+v", groups[0])
	}
	if groups[1].UserInfo.Username != "bob" || groups[1].Order[0].OrderID != 3 {
		t.Errorf("Unexpected second group: %+v", groups[1])
	}
}

func TestGroupByOwnerEmptyIsNotNil(t *testing.T) {
	b, _ := json.Marshal(GroupByOwner(nil))
	if string(b) != "[]" {
		t.Errorf("Expected [], got %s", b)
	}
}

func TestOrderDetailsOmitsUserInfo(t *testing.T) {
	o := order(1, 1, "alice")
	d := ToOrderDetails(o.User, []models.Order{o}, false)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "userInfo") {
		t.Errorf("Expected userInfo to be omitted, got %s", b)
	}
	if strings.Contains(string(b), "deliveryDate") {
		t.Errorf("Expected nil deliveryDate to be omitted, got %s", b)
	}

	with := ToOrderDetails(o.User, []models.Order{o}, true)
	if with.UserInfo == nil || with.UserInfo.Email != "alice@example.com" {
		t.Errorf("Expected identity info, got %+v", with.UserInfo)
	}
}

func TestToOrderCarriesID(t *testing.T) {
	got := ToOrder(order(42, 1, "alice"))
	if got.OrderID != 42 || got.Status != "PENDING" || !got.TotalPrice.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("Unexpected mapping: %+v", got)
	}
}
