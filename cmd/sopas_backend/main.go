package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/sopas_backend/internal/core/services"
	"github.com/SscSPs/sopas_backend/internal/handlers"
	"github.com/SscSPs/sopas_backend/internal/middleware"
	"github.com/SscSPs/sopas_backend/internal/platform/config"
	"github.com/SscSPs/sopas_backend/internal/repositories/cache"
	"github.com/SscSPs/sopas_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/sopas_backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// @title Sopas Backend API
// @version 1.0
// @description Order management for a soup business: jornadas, pedidos and the price catalog.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	// Amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	var opts []services.ContainerOption

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = database.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close()

		catalogCache := cache.NewCatalogCache(repos.CatalogRepo, rdb, cfg.CatalogCacheTTL)
		repos.CatalogRepo = catalogCache
		opts = append(opts, services.WithHealthCheck("redis", catalogCache))
		logger.Info("Catalog cache enabled", slog.Duration("ttl", cfg.CatalogCacheTTL))
	}

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit, rdb)
	if err != nil {
		logger.Error("Failed to build rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, opts...)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("business_timezone", cfg.BusinessLocation.String()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
