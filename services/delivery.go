package services

import (
	"context"
	"errors"
	"time"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/authz"
	"lpg-delivery-api/dto"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"
	"lpg-delivery-api/statemachine"

	"gorm.io/gorm"
)

const deliveryNotes = "Delivery in progress"

// DeliveryService assigns orders to delivery personnel and closes them.
type DeliveryService struct {
	Deps
}

func NewDeliveryService(d Deps) *DeliveryService {
	return &DeliveryService{Deps: d.withDefaults("delivery")}
}

// ExpectedDeliveryDate is one day after assignedAt, pushed to Monday when
// that day is a Sunday.
func ExpectedDeliveryDate(assignedAt time.Time) time.Time {
	due := assignedAt.Add(24 * time.Hour)
	if due.Weekday() == time.Sunday {
		due = due.Add(24 * time.Hour)
	}
	return due.Truncate(time.Second)
}

func orderNotFound() error {
	return apperr.NotFound(apperr.CodeOrderNotFound, "Order not found")
}

// AssignOrderToDelivery hands a PENDING order to a delivery person and
// moves it IN_TRANSIT.
func (s *DeliveryService) AssignOrderToDelivery(ctx context.Context, actor *models.User, orderID uint, deliveryUsername string) (*models.Delivery, error) {
	const op = "assign_delivery"
	if err := authz.Authorize(authz.OpAssignDelivery, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	var delivery *models.Delivery
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewOrders(tx)
		order, err := orders.FindByID(ctx, orderID)
		if errors.Is(err, repository.ErrNotFound) {
			return orderNotFound()
		}
		if err != nil {
			return err
		}

		person, err := repository.NewUsers(tx).FindByUsername(ctx, deliveryUsername)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(apperr.CodeDeliveryPersonNotFound, "Delivery person not found: "+deliveryUsername)
		}
		if err != nil {
			return err
		}
		if person.Role != models.RoleDeliveryPerson {
			return apperr.Business(apperr.CodeNotDeliveryPerson, deliveryUsername+" is not a delivery person")
		}

		deliveries := repository.NewDeliveries(tx)
		exists, err := deliveries.ExistsForOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict(apperr.CodeAlreadyAssigned, "Order is already assigned for delivery")
		}
		if err := statemachine.CanTransition(order.Status, models.StatusInTransit, actor.Role); err != nil {
			return apperr.Business(apperr.CodeOrderNotAssignable, "Only PENDING orders can be assigned")
		}

		now := s.now()
		delivery = &models.Delivery{
			OrderID:              order.ID,
			DeliveryPersonID:     person.ID,
			Status:               models.DeliveryInTransit,
			ExpectedDeliveryDate: ExpectedDeliveryDate(now),
			Notes:                deliveryNotes,
		}
		if err := deliveries.Create(ctx, delivery); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return apperr.Conflict(apperr.CodeAlreadyAssigned, "Order is already assigned for delivery")
			}
			return err
		}
		delivery.DeliveryPerson = *person

		order.Status = models.StatusInTransit
		return orders.Save(ctx, order)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.reqLog(ctx).Info("order assigned", "order_id", orderID, "delivery_person", deliveryUsername,
		"expected", delivery.ExpectedDeliveryDate)
	return delivery, nil
}

// MarkAsDelivered closes the delivery of an IN_TRANSIT order. A delivery
// person may only close deliveries assigned to them.
func (s *DeliveryService) MarkAsDelivered(ctx context.Context, actor *models.User, orderID uint) (*models.Delivery, error) {
	const op = "mark_delivered"
	if err := authz.Authorize(authz.OpMarkDelivered, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	var delivery *models.Delivery
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewOrders(tx)
		order, err := orders.FindByID(ctx, orderID)
		if errors.Is(err, repository.ErrNotFound) {
			return orderNotFound()
		}
		if err != nil {
			return err
		}

		deliveries := repository.NewDeliveries(tx)
		delivery, err = deliveries.FindByOrder(ctx, order.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Business(apperr.CodeNoDeliveryAssigned, "No delivery assigned for this order")
		}
		if err != nil {
			return err
		}
		if actor.Role == models.RoleDeliveryPerson && delivery.DeliveryPersonID != actor.ID {
			return apperr.Forbidden(apperr.CodeNotAssignedPerson, "This order is not assigned to you")
		}
		if order.Status == models.StatusDelivered || delivery.Status == models.DeliveryDelivered {
			return apperr.Business(apperr.CodeAlreadyDelivered, "Order is already delivered")
		}
		if err := statemachine.CanTransition(order.Status, models.StatusDelivered, actor.Role); err != nil {
			return err
		}

		now := s.now()
		delivery.Status = models.DeliveryDelivered
		delivery.DeliveryDate = &now
		if err := deliveries.Save(ctx, delivery); err != nil {
			return err
		}
		order.Status = models.StatusDelivered
		order.DeliveryDate = &now
		return orders.Save(ctx, order)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.reqLog(ctx).Info("order delivered", "order_id", orderID, "by", actor.Username)
	return delivery, nil
}

// GetAllAssignedOrders lists the actor's IN_TRANSIT deliveries grouped by
// customer. An empty list is a success.
func (s *DeliveryService) GetAllAssignedOrders(ctx context.Context, actor *models.User) ([]dto.OrderDetails, error) {
	const op = "list_assigned_orders"
	if err := authz.Authorize(authz.OpListAssigned, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	ids, err := repository.NewDeliveries(s.DB).OrderIDsAssignedTo(ctx, actor.ID, models.DeliveryInTransit)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	list, err := repository.NewOrders(s.DB).ListByIDsWithStatus(ctx, ids, models.StatusInTransit)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	return dto.GroupByOwner(list), nil
}
