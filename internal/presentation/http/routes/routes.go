package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pharmacore/pms-api/internal/config"
	domainRepo "github.com/pharmacore/pms-api/internal/domain/repository"
	"github.com/pharmacore/pms-api/internal/presentation/http/handler"
	"github.com/pharmacore/pms-api/internal/presentation/http/middleware"
	"github.com/pharmacore/pms-api/pkg/utils"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Inventory *handler.InventoryHandler
	Sale      *handler.SaleHandler
	Reference *handler.ReferenceHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
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
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Staff management (admin only)
	users := protected.Group("/users")
	users.Use(middleware.RequireAdmin())
	{
		users.POST("", h.Auth.Register)
		users.GET("", h.Auth.ListUsers)
		users.DELETE("/:id", h.Auth.DeleteUser)
	}

	registerInventoryRoutes(protected, h)
	registerSaleRoutes(protected, h, deps)
	registerReferenceRoutes(protected, h)
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	stocks := protected.Group("/stocks")
	{
		stocks.GET("", h.Inventory.List)
		stocks.POST("/receive", h.Inventory.Receive)
		stocks.GET("/search", h.Inventory.Search)
		stocks.GET("/low", h.Inventory.GetLowStock)
		stocks.GET("/sufficient", h.Inventory.GetSufficientStock)
		stocks.GET("/today", h.Inventory.GetTodayReceives)
		stocks.GET("/:item/:category", h.Inventory.Get)
		stocks.PUT("/:item/:category", h.Inventory.Update)
		stocks.DELETE("/:item/:category", middleware.RequireAdmin(), h.Inventory.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale creation requires an idempotency key so a retried POST
		// cannot consume stock twice.
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Create)
		sales.GET("/today", h.Sale.GetToday)
		sales.GET("/:invoice_no", h.Sale.Get)
		sales.PUT("/:invoice_no", h.Sale.Update)
		sales.DELETE("/:invoice_no", middleware.RequireAdmin(), h.Sale.Delete)
	}
}

func registerReferenceRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Reference.ListCategories)
		categories.POST("", h.Reference.CreateCategory)
		categories.PUT("/:id", h.Reference.UpdateCategory)
		categories.DELETE("/:id", middleware.RequireAdmin(), h.Reference.DeleteCategory)
	}

	generics := protected.Group("/generics")
	{
		generics.GET("", h.Reference.ListGenerics)
		generics.POST("", h.Reference.CreateGeneric)
		generics.PUT("/:id", h.Reference.UpdateGeneric)
		generics.DELETE("/:id", middleware.RequireAdmin(), h.Reference.DeleteGeneric)
	}

	companies := protected.Group("/companies")
	{
		companies.GET("", h.Reference.ListCompanies)
		companies.POST("", h.Reference.CreateCompany)
		companies.PUT("/:id", h.Reference.UpdateCompany)
		companies.DELETE("/:id", middleware.RequireAdmin(), h.Reference.DeleteCompany)
	}

	medicines := protected.Group("/medicines")
	{
		medicines.GET("", h.Reference.ListMedicines)
		medicines.POST("", h.Reference.CreateMedicine)
		medicines.PUT("/:id", h.Reference.UpdateMedicine)
		medicines.DELETE("/:id", middleware.RequireAdmin(), h.Reference.DeleteMedicine)
	}
}
