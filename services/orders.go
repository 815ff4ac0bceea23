package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/authz"
	"lpg-delivery-api/dto"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	modifyWindow = 24 * time.Hour
	cancelWindow = 24 * time.Hour
)

// OrderService owns the order lifecycle and the stock reservations that
// go with it.
type OrderService struct {
	Deps
}

func NewOrderService(d Deps) *OrderService {
	return &OrderService{Deps: d.withDefaults("orders")}
}

// checkOrderRequest validates the cylinder pair and quantity of a create
// or modify request.
func checkOrderRequest(req dto.OrderRequest) (models.CylinderType, error) {
	typ := models.CylinderType(strings.ToUpper(strings.TrimSpace(req.CylinderType)))
	if !typ.Valid() {
		return "", apperr.Business(apperr.CodeOrderInvalidType,
			"Invalid cylinder type. Allowed values: COMMERCIAL, DOMESTIC")
	}
	if !typ.Matches(req.Capacity) {
		return "", apperr.Business(apperr.CodeOrderCapacityMismatch,
			"Capacity does not match cylinder type. COMMERCIAL is 18.5 kg, DOMESTIC is 14.5 kg")
	}
	if req.Quantity <= 0 {
		return "", apperr.Business(apperr.CodeOrderInvalidQuantity, "Quantity must be greater than zero")
	}
	return typ, nil
}

func insufficientStock() error {
	return apperr.Business(apperr.CodeInsufficientStock, "Insufficient stock for the requested quantity")
}

// CreateOrder reserves stock and records a PENDING order for the actor.
func (s *OrderService) CreateOrder(ctx context.Context, actor *models.User, req dto.OrderRequest) (*models.Order, error) {
	const op = "create_order"
	if err := authz.Authorize(authz.OpCreateOrder, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	typ, err := checkOrderRequest(req)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	var order *models.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cylinders := repository.NewCylinders(tx)
		cyl, err := cylinders.FindByTypeAndWeight(ctx, typ, req.Capacity)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Business(apperr.CodeNoStock, "No stock available for the requested cylinder")
		}
		if err != nil {
			return err
		}
		if cyl.StockQuantity < req.Quantity {
			return insufficientStock()
		}
		if err := cylinders.Reserve(ctx, cyl.ID, req.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return insufficientStock()
			}
			return err
		}

		now := s.now()
		order = &models.Order{
			UserID:       actor.ID,
			CylinderType: typ,
			Capacity:     req.Capacity,
			Quantity:     req.Quantity,
			TotalPrice:   cyl.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
			Status:       models.StatusPending,
			OrderDate:    now,
			CreatedAt:    now,
		}
		return repository.NewOrders(tx).Create(ctx, order)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.reqLog(ctx).Info("order placed", "order_id", order.ID, "user", actor.Username,
		"type", order.CylinderType, "quantity", order.Quantity)
	return order, nil
}

// GetOrderDetails returns a user's orders. Customers only see their own
// orders and get no identity info; admins must name the user by both
// username and phone number.
func (s *OrderService) GetOrderDetails(ctx context.Context, actor *models.User, username, phone *string) (dto.OrderDetails, error) {
	const op = "get_order_details"
	if err := authz.Authorize(authz.OpGetOrderDetails, actor); err != nil {
		return dto.OrderDetails{}, s.fail(ctx, op, err)
	}
	orders := repository.NewOrders(s.DB)

	var (
		list        []models.Order
		err         error
		includeUser bool
	)
	switch actor.Role {
	case models.RoleCustomer:
		if (username != nil && *username != actor.Username) || (phone != nil && *phone != actor.PhoneNumber) {
			return dto.OrderDetails{}, s.fail(ctx, op, apperr.Forbidden(apperr.CodeForeignOrderLookup,
				"Unauthorized: Customers can only view their own orders."))
		}
		list, err = orders.ListByUser(ctx, actor.ID)
	case models.RoleAdmin:
		if username == nil || phone == nil {
			return dto.OrderDetails{}, s.fail(ctx, op, apperr.Business(apperr.CodeAdminFiltersRequired,
				"Admin must provide username and phone number."))
		}
		list, err = orders.ListByUsernameAndPhone(ctx, *username, *phone)
		includeUser = true
	default:
		return dto.OrderDetails{}, s.fail(ctx, op, authz.Denied())
	}
	if err != nil {
		return dto.OrderDetails{}, s.fail(ctx, op, err)
	}
	if len(list) == 0 {
		return dto.OrderDetails{}, s.fail(ctx, op, apperr.NotFound(apperr.CodeNoOrdersFound, "No orders found"))
	}
	return dto.ToOrderDetails(list[0].User, list, includeUser), nil
}

// startOfDay truncates t to midnight UTC of its calendar day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GetAllOrdersByDateRange lists orders placed between start and end, both
// days inclusive, grouped by owner.
func (s *OrderService) GetAllOrdersByDateRange(ctx context.Context, actor *models.User, start, end time.Time) ([]dto.OrderDetails, error) {
	const op = "list_orders_by_date"
	if err := authz.Authorize(authz.OpListOrdersByDate, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	from, to := startOfDay(start), startOfDay(end)
	if from.After(to) {
		return nil, s.fail(ctx, op, apperr.Business(apperr.CodeInvalidDateRange,
			"Start date must not be after end date"))
	}
	list, err := repository.NewOrders(s.DB).ListPlacedBetween(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	return dto.GroupByOwner(list), nil
}

// ModifyOrder changes the cylinder and quantity of a PENDING order owned
// by the actor, moving the stock reservation accordingly.
func (s *OrderService) ModifyOrder(ctx context.Context, actor *models.User, orderID uint, req dto.OrderRequest) (*models.Order, error) {
	const op = "modify_order"
	if err := authz.Authorize(authz.OpModifyOrder, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	typ, err := checkOrderRequest(req)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	var order *models.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = repository.NewOrders(tx).FindOwned(ctx, orderID, actor.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(apperr.CodeOrderNotFound, "Order not found")
		}
		if err != nil {
			return err
		}
		if order.Status != models.StatusPending {
			return apperr.Business(apperr.CodeOrderNotModifiable,
				"Only PENDING orders can be modified; order is "+string(order.Status))
		}
		if s.now().Sub(order.OrderDate) > modifyWindow {
			return apperr.Business(apperr.CodeModifyWindowExpired,
				"Order can only be modified within 24 hours of placing it")
		}

		cylinders := repository.NewCylinders(tx)
		next, err := cylinders.FindByTypeAndWeight(ctx, typ, req.Capacity)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.Business(apperr.CodeModifyCylinderNotFound, "Requested cylinder is not stocked")
		}
		if err != nil {
			return err
		}
		prev, err := cylinders.FindByTypeAndWeight(ctx, order.CylinderType, order.Capacity)
		if err != nil {
			return err
		}

		available := next.StockQuantity
		if prev.ID == next.ID {
			available += order.Quantity
		}
		if available < req.Quantity {
			return apperr.Business(apperr.CodeModifyInsufficient, "Insufficient stock for the modified order")
		}

		if err := cylinders.Release(ctx, prev.ID, order.Quantity); err != nil {
			return err
		}
		if err := cylinders.Reserve(ctx, next.ID, req.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return apperr.Business(apperr.CodeModifyInsufficient, "Insufficient stock for the modified order")
			}
			return err
		}

		order.CylinderType = typ
		order.Capacity = req.Capacity
		order.Quantity = req.Quantity
		order.TotalPrice = next.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		return repository.NewOrders(tx).Save(ctx, order)
	})
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	s.reqLog(ctx).Info("order modified", "order_id", order.ID, "type", order.CylinderType, "quantity", order.Quantity)
	return order, nil
}

// CancelOrder deletes an order placed within the last 24 hours. Admins may
// cancel any order, everyone else only their own. Reserved stock is put
// back unless the cylinders were already delivered.
func (s *OrderService) CancelOrder(ctx context.Context, actor *models.User, orderID uint) error {
	const op = "cancel_order"
	if err := authz.Authorize(authz.OpCancelOrder, actor); err != nil {
		return s.fail(ctx, op, err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		orders := repository.NewOrders(tx)
		order, err := orders.FindByID(ctx, orderID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(apperr.CodeOrderNotFound, "Order not found")
		}
		if err != nil {
			return err
		}
		if s.now().Sub(order.CreatedAt) > cancelWindow {
			return apperr.Business(apperr.CodeCancelWindowExpired,
				"Order can only be cancelled within 24 hours of placing it")
		}
		if actor.Role != models.RoleAdmin && order.UserID != actor.ID {
			return apperr.Forbidden(apperr.CodeCancelForbidden, "You can only cancel your own orders")
		}

		if order.Status != models.StatusDelivered {
			cylinders := repository.NewCylinders(tx)
			cyl, err := cylinders.FindByTypeAndWeight(ctx, order.CylinderType, order.Capacity)
			if err != nil {
				return err
			}
			if err := cylinders.Release(ctx, cyl.ID, order.Quantity); err != nil {
				return err
			}
		}
		return orders.Delete(ctx, order.ID)
	})
	if err != nil {
		return s.fail(ctx, op, err)
	}
	s.reqLog(ctx).Info("order cancelled", "order_id", orderID, "by", actor.Username)
	return nil
}
