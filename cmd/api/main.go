package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sarisense/sarisense-api/internal/application/service"
	"github.com/sarisense/sarisense-api/internal/config"
	"github.com/sarisense/sarisense-api/internal/events"
	"github.com/sarisense/sarisense-api/internal/infrastructure/database"
	"github.com/sarisense/sarisense-api/internal/infrastructure/repository"
	"github.com/sarisense/sarisense-api/internal/presentation/http/handler"
	"github.com/sarisense/sarisense-api/internal/presentation/http/routes"
	"github.com/sarisense/sarisense-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed sample catalog data outside production
	if cfg.App.Env != "production" {
		if err := database.SeedSampleData(db); err != nil {
			log.Printf("Warning: Failed to seed sample data: %v", err)
		}
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Event bus linking checkout to analytics recomputes
	bus := events.NewBus()
	defer bus.Close()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, customerRepo, creditRepo, bus)
	customerService := service.NewCustomerService(customerRepo, creditRepo)
	creditService := service.NewCreditService(creditRepo, customerRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, settingsRepo, cfg.Analytics)

	// Recompute analytics whenever a sale lands
	listenCtx, stopListen := context.WithCancel(context.Background())
	defer stopListen()
	go analyticsService.Listen(listenCtx, bus.Subscribe(64))

	// Hourly purge of expired idempotency keys
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-listenCtx.Done():
				return
			case <-ticker.C:
				if err := idempotencyRepo.DeleteExpired(listenCtx); err != nil {
					log.Printf("idempotency key cleanup failed: %v", err)
				}
			}
		}
	}()

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Sale:      handler.NewSaleHandler(saleService),
		Customer:  handler.NewCustomerHandler(customerService),
		Credit:    handler.NewCreditHandler(creditService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
