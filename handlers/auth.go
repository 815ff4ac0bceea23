package handlers

import (
	"lpg-delivery-api/dto"
	"lpg-delivery-api/middleware"
	"lpg-delivery-api/models"
	"lpg-delivery-api/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) token(c *gin.Context, user *models.User) (dto.Token, bool) {
	tok, exp, err := h.tokens.GenerateToken(user)
	if err != nil {
		response.Error(c, err)
		return dto.Token{}, false
	}
	return dto.Token{Token: tok, TokenType: "Bearer", ExpiresAt: exp.UTC()}, true
}

// Signup creates a customer account and returns a token for it
func (h *Handler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	user, err := h.svc.Auth.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	tok, ok := h.token(c, user)
	if !ok {
		return
	}
	response.Created(c, gin.H{"user": dto.ToProfile(*user), "token": tok})
}

// Signin authenticates a user and returns a JWT
func (h *Handler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	user, err := h.svc.Auth.Signin(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	tok, ok := h.token(c, user)
	if !ok {
		return
	}
	response.OK(c, tok)
}

// GetProfile returns the authenticated user's profile
func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.svc.Auth.Profile(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToProfile(*user))
}
