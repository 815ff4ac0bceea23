// Package authz holds the role policy: which roles may invoke which
// operation. The table is evaluated before any workflow body runs.
package authz

import (
	"lpg-delivery-api/apperr"
	"lpg-delivery-api/models"
)

// Operation names a protected workflow entry point.
type Operation string

const (
	OpViewProfile        Operation = "view_profile"
	OpCreateStaffAccount Operation = "create_staff_account"
	OpUpsertCylinder     Operation = "upsert_cylinder"
	OpListCylinders      Operation = "list_cylinders"
	OpCreateOrder        Operation = "create_order"
	OpGetOrderDetails    Operation = "get_order_details"
	OpListOrdersByDate   Operation = "list_orders_by_date"
	OpModifyOrder        Operation = "modify_order"
	OpCancelOrder        Operation = "cancel_order"
	OpAssignDelivery     Operation = "assign_delivery"
	OpMarkDelivered      Operation = "mark_delivered"
	OpListAssigned       Operation = "list_assigned_orders"
	OpSubmitFeedback     Operation = "submit_feedback"
)

var (
	anyRole   = models.Roles
	adminOnly = []models.UserRole{models.RoleAdmin}
)

// rules is the authoritative policy definition. Ownership checks that
// depend on the resource (cancel, modify, feedback) live in the workflows.
var rules = map[Operation][]models.UserRole{
	OpViewProfile:        anyRole,
	OpCreateStaffAccount: adminOnly,
	OpUpsertCylinder:     adminOnly,
	OpListCylinders:      adminOnly,
	OpCreateOrder:        anyRole,
	OpGetOrderDetails:    {models.RoleCustomer, models.RoleAdmin},
	OpListOrdersByDate:   adminOnly,
	OpModifyOrder:        {models.RoleCustomer},
	OpCancelOrder:        anyRole,
	OpAssignDelivery:     adminOnly,
	OpMarkDelivered:      {models.RoleAdmin, models.RoleDeliveryPerson},
	OpListAssigned:       {models.RoleDeliveryPerson},
	OpSubmitFeedback:     {models.RoleCustomer},
}

type ruleKey struct {
	op   Operation
	role models.UserRole
}

var allowed = func() map[ruleKey]bool {
	m := make(map[ruleKey]bool)
	for op, roles := range rules {
		for _, r := range roles {
			m[ruleKey{op, r}] = true
		}
	}
	return m
}()

// Allowed reports whether role may invoke op. Unknown operations are denied.
func Allowed(op Operation, role models.UserRole) bool {
	return allowed[ruleKey{op, role}]
}

// Denied is the fault returned for every policy denial.
func Denied() *apperr.Error {
	return apperr.Forbidden(apperr.CodeAccessDenied, "Access denied, You are not allowed to access this")
}

// Authorize returns a forbidden fault when the actor may not invoke op.
func Authorize(op Operation, actor *models.User) error {
	if actor == nil || !Allowed(op, actor.Role) {
		return Denied()
	}
	return nil
}
