package handlers

import (
	"lpg-delivery-api/dto"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/response"

	"github.com/gin-gonic/gin"
)

// AssignDelivery hands a pending order to a delivery person (admin only)
func (h *Handler) AssignDelivery(c *gin.Context) {
	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	d, err := h.svc.Delivery.AssignOrderToDelivery(c.Request.Context(), middleware.CurrentUser(c), id, c.Param("userName"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToDelivery(*d))
}

// MarkDelivered closes the delivery of an in-transit order
func (h *Handler) MarkDelivered(c *gin.Context) {
	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	d, err := h.svc.Delivery.MarkAsDelivered(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToDelivery(*d))
}

// GetMyDeliveries returns the in-transit orders assigned to the caller
func (h *Handler) GetMyDeliveries(c *gin.Context) {
	groups, err := h.svc.Delivery.GetAllAssignedOrders(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, groups)
}
