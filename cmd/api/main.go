package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pharmacore/pms-api/internal/application/service"
	"github.com/pharmacore/pms-api/internal/config"
	"github.com/pharmacore/pms-api/internal/infrastructure/database"
	"github.com/pharmacore/pms-api/internal/infrastructure/repository"
	"github.com/pharmacore/pms-api/internal/presentation/http/handler"
	"github.com/pharmacore/pms-api/internal/presentation/http/routes"
	"github.com/pharmacore/pms-api/pkg/logger"
	"github.com/pharmacore/pms-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	zlog := logger.Must(logger.New(cfg.App.Env))
	defer zlog.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial admin account if configured
	if err := database.SeedAdminUser(db); err != nil {
		zlog.Warn("failed to seed admin user", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	stockRepo := repository.NewStockRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	genericRepo := repository.NewGenericRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Sweep expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				zlog.Warn("failed to delete expired idempotency keys", zap.Error(err))
			}
		}
	}()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	inventoryService := service.NewInventoryService(db, stockRepo)
	saleService := service.NewSaleService(db, stockRepo, invoiceRepo, logger.Named(zlog, "sale"))
	referenceService := service.NewReferenceService(categoryRepo, genericRepo, companyRepo, medicineRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Sale:      handler.NewSaleHandler(saleService),
		Reference: handler.NewReferenceHandler(referenceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          logger.Named(zlog, "http"),
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", port),
	)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
