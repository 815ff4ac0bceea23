package handlers

import (
	"lpg-delivery-api/dto"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/response"

	"github.com/gin-gonic/gin"
)

// SubmitFeedback rates a delivered order (customer only)
func (h *Handler) SubmitFeedback(c *gin.Context) {
	id, err := orderID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	fb, err := h.svc.Feedback.SubmitFeedback(c.Request.Context(), middleware.CurrentUser(c), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToFeedback(*fb))
}
