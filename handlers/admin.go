package handlers

import (
	"time"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/dto"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/response"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// CreateStaffAccount creates an ADMIN or DELIVERY_PERSON account (admin only)
func (h *Handler) CreateStaffAccount(c *gin.Context) {
	var req dto.StaffAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	user, err := h.svc.Auth.CreateStaffAccount(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToProfile(*user))
}

func parseDay(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, apperr.Business(apperr.CodeMalformedDate, key+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// AdminGetOrdersByDate returns orders placed between startDate and endDate
// (both inclusive) grouped by customer (admin only)
func (h *Handler) AdminGetOrdersByDate(c *gin.Context) {
	start, err := parseDay(c, "startDate")
	if err != nil {
		response.Error(c, err)
		return
	}
	end, err := parseDay(c, "endDate")
	if err != nil {
		response.Error(c, err)
		return
	}
	groups, err := h.svc.Orders.GetAllOrdersByDateRange(c.Request.Context(), middleware.CurrentUser(c), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, groups)
}
