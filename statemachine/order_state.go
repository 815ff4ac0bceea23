package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"lpg-delivery-api/models"
)

// ErrInvalidTransition is returned for any move not listed in the table.
var ErrInvalidTransition = errors.New("invalid order transition")

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor models.UserRole    `json:"actor"`
	Via   string             `json:"via"`
}

// validTransitions is the authoritative lifecycle definition.
// Removal of a PENDING order by cancel is not a transition.
var validTransitions = []Transition{
	// Admin assigns a delivery person
	{From: models.StatusPending, To: models.StatusInTransit, Actor: models.RoleAdmin, Via: "assign"},
	// Admin or the assigned delivery person closes the delivery
	{From: models.StatusInTransit, To: models.StatusDelivered, Actor: models.RoleAdmin, Via: "mark-delivered"},
	{From: models.StatusInTransit, To: models.StatusDelivered, Actor: models.RoleDeliveryPerson, Via: "mark-delivered"},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another.
// The returned error wraps ErrInvalidTransition.
func CanTransition(from, to models.OrderStatus, actor models.UserRole) error {
	if transitionMap[transitionKey{from, to, actor}] {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s is not allowed for %s; valid next states from %s: %s",
		ErrInvalidTransition, from, to, actor, from, describeValidFrom(from))
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	parts := make([]string, len(nexts))
	for i, s := range nexts {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// GetAllTransitions returns the full lifecycle table for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
