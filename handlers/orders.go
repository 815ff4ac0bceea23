package handlers

import (
	"fmt"

	"lpg-delivery-api/dto"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/response"

	"github.com/gin-gonic/gin"
)

// PlaceOrder reserves stock and creates a PENDING order
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	order, err := h.svc.Orders.CreateOrder(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToOrder(*order))
}

// GetOrderDetails returns the caller's orders, or for admins the orders of
// the user named by username and phoneNumber
func (h *Handler) GetOrderDetails(c *gin.Context) {
	details, err := h.svc.Orders.GetOrderDetails(c.Request.Context(), middleware.CurrentUser(c),
		optionalQuery(c, "username", "userName"), optionalQuery(c, "phoneNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, details)
}

// ModifyOrder changes the cylinder and quantity of a pending order
func (h *Handler) ModifyOrder(c *gin.Context) {
	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	order, err := h.svc.Orders.ModifyOrder(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToOrder(*order))
}

// CancelOrder deletes an order placed within the last day
func (h *Handler) CancelOrder(c *gin.Context) {
	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.svc.Orders.CancelOrder(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.Message{Message: fmt.Sprintf("Order deleted successfully for orderId %d", id)})
}
