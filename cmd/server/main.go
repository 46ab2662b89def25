package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	inventoryapp "github.com/agrostock/backend/internal/application/inventory"
	partnerapp "github.com/agrostock/backend/internal/application/partner"
	"github.com/agrostock/backend/internal/infrastructure/cache"
	"github.com/agrostock/backend/internal/infrastructure/config"
	"github.com/agrostock/backend/internal/infrastructure/event"
	"github.com/agrostock/backend/internal/infrastructure/logger"
	"github.com/agrostock/backend/internal/infrastructure/persistence"
	"github.com/agrostock/backend/internal/interfaces/http/handler"
	"github.com/agrostock/backend/internal/interfaces/http/middleware"
	"github.com/agrostock/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories consumed outside the transaction scope
	productRepo := persistence.NewGormProductRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	// Transaction scope shared by the inventory and credit services
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Event bus and stock alert notifications
	eventBus := event.NewInMemoryEventBus(log)
	notifier := inventoryapp.NewLoggingStockAlertNotifier(log)
	eventBus.Subscribe(inventoryapp.NewStockAlertHandler(log, notifier))
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Alert cooldown (Redis when configured, in-memory otherwise)
	cooldown := cache.NewAlertCooldown(cfg, log)

	// Application services
	inventoryService := inventoryapp.NewInventoryService(txScope, cooldown, log)
	inventoryService.SetEventPublisher(eventBus)
	inventoryService.SetCooldownWindow(cfg.Alert.CooldownWindow)
	productService := inventoryapp.NewProductService(productRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo, log)
	creditService := partnerapp.NewCreditService(txScope.PartnerScope(), inventoryService, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig()))
	engine.Use(middleware.Tenant(middleware.DefaultTenantConfig()))

	// Handlers and routes
	handler.NewSystemHandler(db).RegisterRoutes(engine)

	r := router.NewRouter(engine)
	r.Register(handler.NewProductHandler(productService))
	r.Register(handler.NewInventoryHandler(inventoryService))
	r.Register(handler.NewPartnerHandler(customerService, creditService))
	r.Setup()

	// HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(ctx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
