package handlers

import (
	"lpg-delivery-api/dto"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/response"

	"github.com/gin-gonic/gin"
)

// UpsertStock adds stock for a cylinder type (admin only)
func (h *Handler) UpsertStock(c *gin.Context) {
	var req dto.CylinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	cyl, created, err := h.svc.Cylinders.CreateOrUpdateCylinder(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, dto.ToCylinder(*cyl))
		return
	}
	response.OK(c, dto.ToCylinder(*cyl))
}

// ListStock returns the stock rows of one cylinder type (admin only)
func (h *Handler) ListStock(c *gin.Context) {
	cs, err := h.svc.Cylinders.GetCylindersByType(c.Request.Context(), middleware.CurrentUser(c), c.Query("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToCylinders(cs))
}
