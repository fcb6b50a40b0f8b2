package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sarisense/sarisense-api/internal/config"
	"github.com/sarisense/sarisense-api/internal/domain/enum"
	domainRepo "github.com/sarisense/sarisense-api/internal/domain/repository"
	"github.com/sarisense/sarisense-api/internal/presentation/http/handler"
	"github.com/sarisense/sarisense-api/internal/presentation/http/middleware"
	"github.com/sarisense/sarisense-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Sale      *handler.SaleHandler
	Customer  *handler.CustomerHandler
	Credit    *handler.CreditHandler
	Analytics *handler.AnalyticsHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
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
	router.Use(middleware.RequestLogger())
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
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
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

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile routes
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Products
	registerProductRoutes(protected, h)

	// Categories
	registerCategoryRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h, deps)

	// Customers and credits
	registerCustomerRoutes(protected, h)
	registerCreditRoutes(protected, h)

	// Analytics (owner and manager only)
	registerAnalyticsRoutes(protected, h)

	// Settings (owner and manager only)
	settings := protected.Group("/settings")
	settings.Use(middleware.RequireRole(enum.UserRoleOwner, enum.UserRoleManager))
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
	}

	// Users (owner only)
	registerUserRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:id", h.Product.Get)
	}

	// Catalog writes are for owners and managers
	manage := protected.Group("/products")
	manage.Use(middleware.RequireRole(enum.UserRoleOwner, enum.UserRoleManager))
	{
		manage.POST("", h.Product.Create)
		manage.POST("/import", h.Product.Import)
		manage.PUT("/:id", h.Product.Update)
		manage.DELETE("/:id", h.Product.Delete)
		manage.POST("/:id/restock", h.Product.Restock)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/categories", h.Category.List)

	categories := protected.Group("/categories")
	categories.Use(middleware.RequireRole(enum.UserRoleOwner, enum.UserRoleManager))
	{
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Checkout uses idempotency middleware to prevent duplicate sales
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Checkout)
		sales.GET("/:id", h.Sale.Get)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerCreditRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/customers/:id/credits", h.Credit.ListByCustomer)
	protected.POST("/customers/:id/credits/pay", h.Credit.Pay)
	protected.POST("/credits", h.Credit.Create)
	protected.POST("/credits/:id/cancel", h.Credit.Cancel)

	// Ledger-wide listing and the overdue sweep are for owners and managers
	manage := protected.Group("/credits")
	manage.Use(middleware.RequireRole(enum.UserRoleOwner, enum.UserRoleManager))
	{
		manage.GET("", h.Credit.List)
		manage.POST("/mark-overdue", h.Credit.MarkOverdue)
	}
}

func registerAnalyticsRoutes(protected *gin.RouterGroup, h *Handlers) {
	analytics := protected.Group("/analytics")
	analytics.Use(middleware.RequireRole(enum.UserRoleOwner, enum.UserRoleManager))
	{
		analytics.GET("/dashboard", h.Analytics.Dashboard)
		analytics.GET("/insights", h.Analytics.Insights)
		analytics.GET("/credit-risks", h.Analytics.CreditRisks)
		analytics.POST("/refresh", h.Analytics.Refresh)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(enum.UserRoleOwner))
	{
		users.GET("", h.User.List)
		users.PUT("/:id/role", h.User.UpdateRole)
		users.DELETE("/:id", h.User.Delete)
	}
}
