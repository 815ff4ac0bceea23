// Package response writes the JSON envelope shared by every endpoint:
// {"data": ...} on success, {"error": {"code", "message"}} on failure.
package response

import (
	"net/http"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/logger"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Envelope struct {
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorBody  `json:"error,omitempty"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Data: data})
}

// Error aborts the request with the envelope for err. Internal faults are
// logged with their cause and answered with a generic message.
func Error(c *gin.Context, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.KindInternal {
		logger.FromContext(c.Request.Context(), logger.Discard()).
			Error("internal error", "path", c.FullPath(), "error", err)
		e = apperr.Internal(nil)
	}
	c.AbortWithStatusJSON(e.HTTPStatus(), Envelope{Error: &ErrorBody{Code: e.Code, Message: e.Message}})
}

// BadRequest answers a body or query that could not be bound.
func BadRequest(c *gin.Context, err error) {
	Error(c, apperr.Business(apperr.CodeBadRequest, "Invalid request: "+err.Error()))
}
