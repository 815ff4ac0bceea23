package services

import (
	"net/http"
	"testing"
	"time"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"
)

func TestExpectedDeliveryDate(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want time.Time
	}{
		{"weekday", wednesday, time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)},
		{"saturday skips sunday", time.Date(2024, 2, 17, 10, 0, 0, 0, time.UTC), time.Date(2024, 2, 19, 10, 0, 0, 0, time.UTC)},
		{"sunday lands on monday", time.Date(2024, 2, 18, 8, 30, 0, 0, time.UTC), time.Date(2024, 2, 19, 8, 30, 0, 0, time.UTC)},
		{"sub-second dropped", time.Date(2024, 2, 14, 10, 0, 0, 999, time.UTC), time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpectedDeliveryDate(tt.at); !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

type deliveryFixture struct {
	*fixture
	alice, admin, carl, dana *models.User
	placed                   *models.Order
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	f := newFixture(t)
	d := &deliveryFixture{
		fixture: f,
		alice:   f.user("alice", models.RoleCustomer),
		admin:   f.user("admin", models.RoleAdmin),
		carl:    f.user("carl", models.RoleDeliveryPerson),
		dana:    f.user("dana", models.RoleDeliveryPerson),
	}
	f.cylinder(models.CylinderDomestic, 10, 1000)
	o, err := f.svc.Orders.CreateOrder(f.ctx, d.alice, domestic(2))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	d.placed = o
	return d
}

func TestAssignOrderToDelivery(t *testing.T) {
	f := newDeliveryFixture(t)

	d, err := f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "carl")
	if err != nil {
		t.Fatalf("Expected assign to succeed, got %v", err)
	}
	want := wednesday.Add(24 * time.Hour)
	if !d.ExpectedDeliveryDate.Equal(want) {
		t.Errorf("Expected delivery date %v, got %v", want, d.ExpectedDeliveryDate)
	}
	if d.Status != models.DeliveryInTransit || d.Notes != "Delivery in progress" || d.DeliveryPerson.Username != "carl" {
		t.Errorf("Unexpected delivery: %+v", d)
	}
	if got := f.order(f.placed.ID).Status; got != models.StatusInTransit {
		t.Errorf("Expected IN_TRANSIT, got %s", got)
	}

	_, err = f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "dana")
	wantCode(t, err, apperr.CodeAlreadyAssigned)
	wantStatus(t, err, http.StatusConflict)
	stored, _ := repository.NewDeliveries(f.db).FindByOrder(f.ctx, f.placed.ID)
	if stored.DeliveryPersonID != f.carl.ID {
		t.Errorf("Expected delivery to stay with carl, got person %d", stored.DeliveryPersonID)
	}
}

func TestAssignOnSaturdaySkipsSunday(t *testing.T) {
	f := newDeliveryFixture(t)
	f.clock.Set(time.Date(2024, 2, 17, 10, 0, 0, 0, time.UTC))

	d, err := f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "carl")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if d.ExpectedDeliveryDate.Weekday() != time.Monday {
		t.Errorf("Expected Monday, got %s", d.ExpectedDeliveryDate.Weekday())
	}
}

func TestAssignOrderToDeliveryRules(t *testing.T) {
	f := newDeliveryFixture(t)

	_, err := f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, 999, "carl")
	wantCode(t, err, apperr.CodeOrderNotFound)

	_, err = f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "nobody")
	wantCode(t, err, apperr.CodeDeliveryPersonNotFound)

	_, err = f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "alice")
	wantCode(t, err, apperr.CodeNotDeliveryPerson)

	_, err = f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.carl, f.placed.ID, "carl")
	wantCode(t, err, apperr.CodeAccessDenied)

	f.db.Model(&models.Order{}).Where("id = ?", f.placed.ID).Update("status", models.StatusInTransit)
	_, err = f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "carl")
	wantCode(t, err, apperr.CodeOrderNotAssignable)
}

func TestMarkAsDelivered(t *testing.T) {
	f := newDeliveryFixture(t)

	_, err := f.svc.Delivery.MarkAsDelivered(f.ctx, f.carl, f.placed.ID)
	wantCode(t, err, apperr.CodeNoDeliveryAssigned)

	if _, err := f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "carl"); err != nil {
		t.Fatalf("assign: %v", err)
	}

	_, err = f.svc.Delivery.MarkAsDelivered(f.ctx, f.dana, f.placed.ID)
	wantCode(t, err, apperr.CodeNotAssignedPerson)

	_, err = f.svc.Delivery.MarkAsDelivered(f.ctx, f.alice, f.placed.ID)
	wantCode(t, err, apperr.CodeAccessDenied)

	f.clock.Advance(3 * time.Hour)
	d, err := f.svc.Delivery.MarkAsDelivered(f.ctx, f.carl, f.placed.ID)
	if err != nil {
		t.Fatalf("Expected assigned person to deliver, got %v", err)
	}
	deliveredAt := wednesday.Add(3 * time.Hour)
	if d.Status != models.DeliveryDelivered || d.DeliveryDate == nil || !d.DeliveryDate.Equal(deliveredAt) {
		t.Errorf("Unexpected delivery: %+v", d)
	}
	o := f.order(f.placed.ID)
	if o.Status != models.StatusDelivered || o.DeliveryDate == nil || !o.DeliveryDate.Equal(deliveredAt) {
		t.Errorf("Expected order delivered at %v, got %+v", deliveredAt, o)
	}

	_, err = f.svc.Delivery.MarkAsDelivered(f.ctx, f.carl, f.placed.ID)
	wantCode(t, err, apperr.CodeAlreadyDelivered)
	_, err = f.svc.Delivery.MarkAsDelivered(f.ctx, f.admin, 999)
	wantCode(t, err, apperr.CodeOrderNotFound)
}

func TestAdminBypassesAssignment(t *testing.T) {
	f := newDeliveryFixture(t)
	if _, err := f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, f.placed.ID, "carl"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if _, err := f.svc.Delivery.MarkAsDelivered(f.ctx, f.admin, f.placed.ID); err != nil {
		t.Fatalf("Expected admin to close any delivery, got %v", err)
	}
}

func TestGetAllAssignedOrders(t *testing.T) {
	f := newDeliveryFixture(t)
	bob := f.user("bob", models.RoleCustomer)
	second, err := f.svc.Orders.CreateOrder(f.ctx, bob, domestic(1))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	third, err := f.svc.Orders.CreateOrder(f.ctx, f.alice, domestic(1))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty, err := f.svc.Delivery.GetAllAssignedOrders(f.ctx, f.carl)
	if err != nil || len(empty) != 0 {
		t.Fatalf("Expected empty success, got %v %v", empty, err)
	}

	for _, id := range []uint{f.placed.ID, second.ID, third.ID} {
		if _, err := f.svc.Delivery.AssignOrderToDelivery(f.ctx, f.admin, id, "carl"); err != nil {
			t.Fatalf("assign %d: %v", id, err)
		}
	}
	if _, err := f.svc.Delivery.MarkAsDelivered(f.ctx, f.carl, third.ID); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	groups, err := f.svc.Delivery.GetAllAssignedOrders(f.ctx, f.carl)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("Expected 2 customer groups, got %d", len(groups))
	}
	if groups[0].UserInfo.Username != "alice" || len(groups[0].Order) != 1 || groups[0].Order[0].OrderID != f.placed.ID {
		t.Errorf("Unexpected alice group: %+v", groups[0])
	}
	if groups[1].UserInfo.Username != "bob" || groups[1].Order[0].OrderID != second.ID {
		t.Errorf("Unexpected bob group: %+v", groups[1])
	}

	other, err := f.svc.Delivery.GetAllAssignedOrders(f.ctx, f.dana)
	if err != nil || len(other) != 0 {
		t.Errorf("Expected dana to have nothing assigned, got %v %v", other, err)
	}

	_, err = f.svc.Delivery.GetAllAssignedOrders(f.ctx, f.admin)
	wantCode(t, err, apperr.CodeAccessDenied)
}
