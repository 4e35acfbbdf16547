package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	checkoutUseCase "github.com/easybots/storefront-backend/internal/domain/usecase/checkout"
	webhookUseCase "github.com/easybots/storefront-backend/internal/domain/usecase/webhook"

	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/handler"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/api/routes"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/database"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/database/migration"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/logger"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/notification"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/payment"
	"github.com/easybots/storefront-backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/easybots/storefront-backend/internal/infrastructure/adapter/time"
	"github.com/easybots/storefront-backend/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          "postgres",
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), tp, appLogger)
	productRepo := repository.NewProductRepository(dbManager.DB(), appLogger)

	// Seed the product catalog
	if err := migration.SeedDefaultProducts(context.Background(), productRepo); err != nil {
		appLogger.Error("Failed to seed default products", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize outbound adapters
	notifier := notification.NewWhatsAppNotifier(notification.Config{
		GatewayURL: cfg.Notification.GatewayURL,
		AuthToken:  cfg.Notification.AuthToken,
		AdminPhone: cfg.Notification.AdminPhone,
	}, appLogger)

	boldClient := payment.NewBoldClient(payment.BoldConfig{
		APIURL: cfg.Bold.APIURL,
		APIKey: cfg.Bold.APIKey,
	}, appLogger)

	// Initialize use cases
	reconciler := webhookUseCase.NewReconciler(transactionRepo, notifier, appLogger)

	checkoutService := checkoutUseCase.NewService(productRepo, boldClient, tp, appLogger, checkoutUseCase.Options{
		OrderPrefix:     cfg.Checkout.OrderPrefix,
		RedirectURL:     cfg.Checkout.RedirectURL,
		ConfirmationURL: cfg.Checkout.ConfirmationURL,
		EpaycoPublicKey: cfg.Epayco.PublicKey,
	})

	// Provider webhook credentials
	boldCreds := webhookUseCase.BoldCredentials{
		WebhookSecret: cfg.Bold.WebhookSecret,
	}
	epaycoCreds := webhookUseCase.EpaycoCredentials{
		CustomerID: cfg.Epayco.CustomerID,
		PublicKey:  cfg.Epayco.PublicKey,
		PrivateKey: cfg.Epayco.PrivateKey,
	}

	// Initialize API handlers
	webhookHandler := handler.NewWebhookHandler(reconciler, boldCreds, epaycoCreds, appLogger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, appLogger)
	productHandler := handler.NewProductHandler(productRepo, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionRepo, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, webhookHandler, checkoutHandler, productHandler, transactionHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		if cfg.Environment == config.Production && os.Getenv("EB_DB_HOST") == "" {
			missingConfigs = append(missingConfigs, "database.host (or EB_DB_HOST environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.host")
		}
	}

	if cfg.Database.Port == "" {
		if cfg.Environment == config.Production && os.Getenv("EB_DB_PORT") == "" {
			missingConfigs = append(missingConfigs, "database.port (or EB_DB_PORT environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.port")
		}
	}

	if cfg.Database.Username == "" {
		if cfg.Environment == config.Production && os.Getenv("EB_DB_USERNAME") == "" {
			missingConfigs = append(missingConfigs, "database.username (or EB_DB_USERNAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.username")
		}
	}

	if cfg.Database.Password == "" {
		if cfg.Environment == config.Production && os.Getenv("EB_DB_PASSWORD") == "" {
			missingConfigs = append(missingConfigs, "database.password (or EB_DB_PASSWORD environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.password")
		}
	}

	if cfg.Database.Database == "" {
		if cfg.Environment == config.Production && os.Getenv("EB_DB_NAME") == "" {
			missingConfigs = append(missingConfigs, "database.database (or EB_DB_NAME environment variable)")
		} else if cfg.Environment != config.Production {
			missingConfigs = append(missingConfigs, "database.database")
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Warn about missing provider credentials instead of refusing to start:
	// the catalog and history endpoints still work without them, and the
	// webhook handlers reject deliveries explicitly.
	if cfg.Bold.WebhookSecret == "" {
		log.Printf("Warning: bold.webhookSecret is not set, Bold webhooks will be rejected")
	}
	if cfg.Epayco.PrivateKey == "" || cfg.Epayco.CustomerID == "" || cfg.Epayco.PublicKey == "" {
		log.Printf("Warning: ePayco credentials are incomplete, ePayco confirmations will be rejected")
	}

	return nil
}
