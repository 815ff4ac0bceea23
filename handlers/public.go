package handlers

import (
	"context"
	"net/http"
	"time"

	"lpg-delivery-api/models"
	"lpg-delivery-api/response"
	"lpg-delivery-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health reports liveness and whether the database answers
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, code := "healthy", http.StatusOK
	db := "up"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status, code, db = "degraded", http.StatusServiceUnavailable, "down"
	}
	c.JSON(code, response.Envelope{Data: gin.H{
		"status":   status,
		"database": db,
		"service":  "LPG Delivery API",
	}})
}

// GetOrderLifecycle returns the order state machine for informational purposes
func (h *Handler) GetOrderLifecycle(c *gin.Context) {
	var terminal []models.OrderStatus
	for _, s := range []models.OrderStatus{models.StatusPending, models.StatusInTransit, models.StatusDelivered} {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}
	response.OK(c, gin.H{
		"transitions":     statemachine.GetAllTransitions(),
		"terminal_states": terminal,
		"description":     "LPG cylinder order lifecycle; PENDING orders may also be cancelled",
	})
}
