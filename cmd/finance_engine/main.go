package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/SscSPs/finance_engine/internal/adapters/provider"
	portsrepo "github.com/SscSPs/finance_engine/internal/core/ports/repositories"
	"github.com/SscSPs/finance_engine/internal/core/services"
	"github.com/SscSPs/finance_engine/internal/handlers"
	"github.com/SscSPs/finance_engine/internal/middleware"
	"github.com/SscSPs/finance_engine/internal/platform/config"
	"github.com/SscSPs/finance_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/finance_engine/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Finance Engine API
// @version 1.0
// @description Currency conversion and double-entry journal validation service.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos := portsrepo.RepositoryProvider{}
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			applied, err := database.RunMigrations(cfg.DatabaseURL, "file://migrations")
			if err != nil {
				logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
			if applied {
				logger.Info("Database migrations applied successfully.")
			} else {
				logger.Info("No new migrations to apply.")
			}
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	container, controller := services.NewServiceContainer(cfg, repos, newProviders(cfg))

	if _, err := controller.LoadCatalog(ctx); err != nil {
		logger.Warn("Using built-in currency catalog", slog.String("error", err.Error()))
	}
	if err := controller.RestoreRates(ctx); err != nil {
		logger.Warn("No stored rate snapshot restored", slog.String("error", err.Error()))
	}
	if err := controller.RestoreHistory(ctx); err != nil {
		logger.Warn("Conversion history not restored", slog.String("error", err.Error()))
	}
	if cfg.RateProviderURL != "" {
		if _, err := controller.RefreshRates(ctx); err != nil {
			logger.Warn("Initial rate refresh failed", slog.String("error", err.Error()))
		}
		controller.StartRateRefresher(ctx, cfg.RateRefreshInterval)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsCfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("base_currency", cfg.BaseCurrency))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func newProviders(cfg *config.Config) services.Providers {
	var p services.Providers
	if cfg.RateProviderURL != "" {
		p.Rates = provider.NewRateClient(cfg.RateProviderURL, cfg.ProviderTimeout, cfg.RateFetchMaxElapsed)
	}
	if cfg.CatalogProviderURL != "" {
		p.Catalog = provider.NewCatalogClient(cfg.CatalogProviderURL, cfg.ProviderTimeout)
	}
	if cfg.ConversionProviderURL != "" {
		p.Authoritative = provider.NewConversionClient(cfg.ConversionProviderURL, cfg.ProviderTimeout)
	}
	return p
}
