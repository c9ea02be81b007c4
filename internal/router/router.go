package router

import (
	"context"
	"time"

	"github.com/lmasumbuku/backend/internal/auth"
	"github.com/lmasumbuku/backend/internal/menu"
	"github.com/lmasumbuku/backend/internal/middleware"
	"github.com/lmasumbuku/backend/internal/order"
	"github.com/lmasumbuku/backend/internal/restaurant"
	"github.com/lmasumbuku/backend/internal/voice"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Config carries the injected perimeter settings. Nothing below the
// handlers reads ambient process state.
type Config struct {
	VoiceAPIKey  string
	AllowOrigins []string
}

// Pinger reports data-store connectivity for GET /status.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Auth       *auth.Handler
	Restaurant *restaurant.Handler
	Menu       *menu.Handler
	Order      *order.Handler
	Voice      *voice.Handler
	DB         Pinger
}

// New assembles the gin engine and every route group.
func New(cfg Config, h Handlers) *gin.Engine {
	r := gin.Default()

	if len(cfg.AllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-api-key"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/status", func(c *gin.Context) {
		if h.DB == nil {
			c.JSON(200, gin.H{"status": "ok", "database": "not configured"})
			return
		}
		if err := h.DB.Ping(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ok", "database": "reachable"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── RESTAURANTS ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleRestaurant),
	)
	{
		restaurants.POST("", h.Restaurant.CreateRestaurant)
		restaurants.GET("/me", h.Restaurant.ListMyRestaurants)
		restaurants.PUT("/:id", h.Restaurant.UpdateRestaurant)

		// Menu management, scoped to the owning restaurant
		restaurants.GET("/:id/menu", h.Menu.List)
		restaurants.POST("/:id/menu", h.Menu.Add)
		restaurants.GET("/:id/menu/:itemID", h.Menu.Get)
		restaurants.PUT("/:id/menu/:itemID", h.Menu.Update)
		restaurants.DELETE("/:id/menu/:itemID", h.Menu.Delete)

		// Incoming orders
		restaurants.GET("/:id/orders", h.Order.List)
		restaurants.POST("/:id/orders/:orderID/accept", h.Order.Accept)
		restaurants.POST("/:id/orders/:orderID/reject", h.Order.Reject)
	}

	// ───────────────────────── VOICE (server-to-server) ─────────────────────────
	voiceGroup := r.Group("/voice")
	voiceGroup.Use(middleware.APIKeyMiddleware(cfg.VoiceAPIKey))
	{
		voiceGroup.GET("/ping", h.Voice.Ping)
		voiceGroup.GET("/restaurant/by-number/:number", h.Voice.RestaurantByNumber)
		voiceGroup.POST("/order", h.Voice.ParseOrder)
		voiceGroup.POST("/orders", h.Voice.CreateOrder)
	}

	return r
}
