package routes

import (
	"lpg-delivery-api/authz"
	"lpg-delivery-api/handlers"
	"lpg-delivery-api/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	Handler   *handlers.Handler
	Tokens    *middleware.TokenService
	DB        *gorm.DB
	RateLimit gin.HandlerFunc // applied to /auth; nil means none
}

func SetupRoutes(r *gin.Engine, d Deps) {
	h := d.Handler
	authed := middleware.AuthRequired(d.Tokens, d.DB)
	allow := middleware.Allow

	// ── Public routes ──────────────────────────────────────────────
	r.GET("/health", h.Health)
	r.GET("/api/order-lifecycle", h.GetOrderLifecycle)

	// ── Accounts ───────────────────────────────────────────────────
	auth := r.Group("/auth")
	if d.RateLimit != nil {
		auth.Use(d.RateLimit)
	}
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/signin", h.Signin)
		auth.POST("/create-delivery-person", authed, allow(authz.OpCreateStaffAccount), h.CreateStaffAccount)
	}

	// ── Stock ledger ───────────────────────────────────────────────
	stocks := r.Group("/stocks", authed)
	{
		stocks.POST("", allow(authz.OpUpsertCylinder), h.UpsertStock)
		stocks.GET("", allow(authz.OpListCylinders), h.ListStock)
	}

	// ── Orders ─────────────────────────────────────────────────────
	api := r.Group("/api", authed)
	{
		api.GET("/profile", allow(authz.OpViewProfile), h.GetProfile)

		api.POST("/orders", allow(authz.OpCreateOrder), h.PlaceOrder)
		api.GET("/orders", allow(authz.OpGetOrderDetails), h.GetOrderDetails)
		api.GET("/orders/all", allow(authz.OpListOrdersByDate), h.AdminGetOrdersByDate)
		api.PUT("/orders/:orderId", allow(authz.OpModifyOrder), h.ModifyOrder)
		api.DELETE("/orders/:orderId", allow(authz.OpCancelOrder), h.CancelOrder)
	}

	// ── Delivery & feedback ────────────────────────────────────────
	v1 := r.Group("/v1", authed)
	{
		v1.GET("/delivery", allow(authz.OpListAssigned), h.GetMyDeliveries)
		v1.PUT("/delivery/:orderId/assign/:userName", allow(authz.OpAssignDelivery), h.AssignDelivery)
		v1.PUT("/delivery/:orderId/mark-delivered", allow(authz.OpMarkDelivered), h.MarkDelivered)

		v1.POST("/feedback/:orderId", allow(authz.OpSubmitFeedback), h.SubmitFeedback)
	}
}

// NewRouter builds the engine with the shared middleware chain and every route.
func NewRouter(d Deps, chain ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(chain...)

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	SetupRoutes(r, d)
	return r
}
