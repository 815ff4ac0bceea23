package middleware

import (
	"errors"
	"strings"
	"time"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/authz"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"
	"lpg-delivery-api/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const principalKey = "principal"

type Claims struct {
	Role models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens whose subject is
// the username.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken creates a signed JWT for a given user
func (s *TokenService) GenerateToken(user *models.User) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	return signed, exp, err
}

// Parse verifies the algorithm, signature, expiry and subject of a token.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

// AuthRequired validates the bearer token and resolves the acting user
// from the identity store.
func AuthRequired(tokens *TokenService, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Error(c, apperr.Unauthenticated(apperr.CodeTokenMissing,
				"Authorization header required (Bearer <token>)"))
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			response.Error(c, apperr.Unauthenticated(apperr.CodeTokenInvalid, "Invalid or expired token"))
			return
		}

		user, err := repository.NewUsers(db).FindByUsername(c.Request.Context(), claims.Subject)
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, apperr.Unauthenticated(apperr.CodePrincipalNotFound, "User not found"))
			return
		}
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Set(principalKey, user)
		c.Next()
	}
}

// Allow enforces the role policy for op before the handler runs.
func Allow(op authz.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Authorize(op, CurrentUser(c)); err != nil {
			response.Error(c, err)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the acting user set by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *models.User {
	val, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	u, _ := val.(*models.User)
	return u
}
