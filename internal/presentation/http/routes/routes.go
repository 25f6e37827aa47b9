package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okushnir/checkline-api/internal/config"
	domainRepo "github.com/okushnir/checkline-api/internal/domain/repository"
	"github.com/okushnir/checkline-api/internal/presentation/http/handler"
	"github.com/okushnir/checkline-api/internal/presentation/http/middleware"
	"github.com/okushnir/checkline-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Receipt *handler.ReceiptHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Rendered receipts are shareable by ID without a token
		v1.GET("/receipts/:id/public", h.Receipt.Public)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(rateLimiterConfig(deps.Cfg))
		protected.Use(rateLimiter.Middleware())

		protected.GET("/profile", h.Auth.Profile)

		receipts := protected.Group("/receipts")
		{
			receipts.POST("", middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}), h.Receipt.Create)
			receipts.GET("", h.Receipt.List)
			receipts.GET("/:id", h.Receipt.Get)
		}
	}

	return router
}

func rateLimiterConfig(cfg *config.Config) middleware.RateLimiterConfig {
	rlc := middleware.DefaultRateLimiterConfig()
	if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Duration > 0 {
		rlc.RequestsPerSecond = float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration)
		rlc.BurstSize = cfg.RateLimit.Requests
		rlc.CleanupInterval = 5 * time.Minute
		rlc.EntryTTL = 10 * time.Minute
	}
	return rlc
}
