package statemachine

import (
	"errors"
	"testing"

	"lpg-delivery-api/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		actor   models.UserRole
		wantErr bool
	}{
		{"admin assigns", models.StatusPending, models.StatusInTransit, models.RoleAdmin, false},
		{"courier cannot assign", models.StatusPending, models.StatusInTransit, models.RoleDeliveryPerson, true},
		{"customer cannot assign", models.StatusPending, models.StatusInTransit, models.RoleCustomer, true},
		{"admin delivers", models.StatusInTransit, models.StatusDelivered, models.RoleAdmin, false},
		{"courier delivers", models.StatusInTransit, models.StatusDelivered, models.RoleDeliveryPerson, false},
		{"customer cannot deliver", models.StatusInTransit, models.StatusDelivered, models.RoleCustomer, true},
		{"skip transit", models.StatusPending, models.StatusDelivered, models.RoleAdmin, true},
		{"no going back", models.StatusDelivered, models.StatusInTransit, models.RoleAdmin, true},
		{"reassign in transit", models.StatusInTransit, models.StatusInTransit, models.RoleAdmin, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to, tt.actor)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("Expected ErrInvalidTransition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected transition to be allowed, got %v", err)
			}
		})
	}
}

func TestTerminalStates(t *testing.T) {
	if !IsTerminal(models.StatusDelivered) {
		t.Error("Expected DELIVERED to be terminal")
	}
	if IsTerminal(models.StatusPending) {
		t.Error("Expected PENDING to have next states")
	}
	nexts := ValidTransitionsFrom(models.StatusInTransit)
	if len(nexts) != 1 || nexts[0] != models.StatusDelivered {
		t.Errorf("Expected [DELIVERED], got %v", nexts)
	}
}

func TestGetAllTransitionsReturnsCopy(t *testing.T) {
	all := GetAllTransitions()
	all[0].To = models.StatusDelivered
	if GetAllTransitions()[0].To != models.StatusInTransit {
		t.Error("Expected table to be unaffected by caller mutation")
	}
}
