package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mytestspam8-prog/africash/internal/domain/port/persistence"
	authUseCase "github.com/mytestspam8-prog/africash/internal/domain/usecase/auth"
	walletUseCase "github.com/mytestspam8-prog/africash/internal/domain/usecase/wallet"

	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/handler"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/middleware"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/api/routes"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/database"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/database/migration"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/logger"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/repository"
	sessionStore "github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/session"
	timeProvider "github.com/mytestspam8-prog/africash/internal/infrastructure/adapter/time"
	"github.com/mytestspam8-prog/africash/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logger.ParseLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
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
	migrator := migration.NewMigrator(dbManager.DB(), appLogger)
	if err := migrator.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	ledgerRepo := repository.NewLedgerRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Session store, durable in the database by default or in Redis when
	// configured
	var sessions persistence.SessionStore
	switch cfg.Session.Backend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		sessions = sessionStore.NewRedisStore(redisClient, tp, appLogger)
	default:
		sessions = sessionStore.NewGormStore(dbManager.DB(), tp, appLogger)
	}

	// Reward table from configuration
	rewards, err := cfg.Rewards.RewardTable()
	if err != nil {
		appLogger.Error("Invalid reward configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	authService := authUseCase.NewService(userRepo, sessions, tp, appLogger, cfg.Session.TTL)
	walletService := walletUseCase.NewService(uow, userRepo, ledgerRepo, rewards, tp, appLogger)

	// Seed the demo account when enabled
	if cfg.Seed.Enabled {
		if err := migration.SeedDemoUser(context.Background(), userRepo, walletService, tp, appLogger); err != nil {
			appLogger.Error("Failed to seed demo user", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize API handlers
	cookie := middleware.SessionCookie{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
		TTL:    cfg.Session.TTL,
	}
	authHandler := handler.NewAuthHandler(authService, cookie, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, authHandler, walletHandler, middleware.RequireAuth(authService, cookie, appLogger))

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.Host == "" {
			missing = append(missing, "database.host (or AC_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missing = append(missing, "database.username (or AC_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missing = append(missing, "database.database (or AC_DB_NAME environment variable)")
		}
	case "sqlite":
		if cfg.Database.Database == "" {
			missing = append(missing, "database.database")
		}
	default:
		return fmt.Errorf("invalid database.driver value: %s, must be postgres or sqlite", cfg.Database.Driver)
	}

	if cfg.Session.Backend != "database" && cfg.Session.Backend != "redis" {
		return fmt.Errorf("invalid session.backend value: %s, must be database or redis", cfg.Session.Backend)
	}
	if cfg.Session.Backend == "redis" && cfg.Redis.Addr == "" {
		missing = append(missing, "redis.addr (or AC_REDIS_ADDR environment variable)")
	}
	if cfg.Session.CookieName == "" {
		missing = append(missing, "session.cookieName")
	}
	if cfg.Session.TTL == 0 {
		missing = append(missing, "session.ttlHours")
	}

	if cfg.Environment == "" {
		missing = append(missing, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
