package handlers

import (
	"strconv"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler serves the HTTP API on top of the workflows.
type Handler struct {
	svc    *services.Services
	tokens *middleware.TokenService
	db     *gorm.DB
}

func New(svc *services.Services, tokens *middleware.TokenService, db *gorm.DB) *Handler {
	return &Handler{svc: svc, tokens: tokens, db: db}
}

// orderID reads the :orderId path parameter.
func orderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Business(apperr.CodeBadRequest, "orderId must be a positive integer")
	}
	return uint(id), nil
}

// optionalQuery returns nil for an absent or empty query parameter.
func optionalQuery(c *gin.Context, keys ...string) *string {
	for _, k := range keys {
		if v := c.Query(k); v != "" {
			return &v
		}
	}
	return nil
}
