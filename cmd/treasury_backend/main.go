package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/treasury_ledger/cmd/docs"
	"github.com/SscSPs/treasury_ledger/internal/core/services"
	"github.com/SscSPs/treasury_ledger/internal/handlers"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/SscSPs/treasury_ledger/internal/platform/app"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/SscSPs/treasury_ledger/internal/platform/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Treasury Ledger API
// @version 1.0
// @description Multi-account treasury ledger: sales, purchase orders, payments, transfers and reconciliation.

// @host localhost:8080
// @BasePath /

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

	// Initialize structured logger
	logger := app.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx := context.Background()
	res, err := app.Open(ctx, cfg, logger, true)
	if err != nil {
		logger.Error("Failed to open stores", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer res.Close()

	recorder := metrics.NewRecorder()
	container := services.NewServiceContainer(cfg, res.Repos, recorder)

	created, err := app.SeedCatalog(ctx, cfg, container.Account)
	if err != nil {
		logger.Error("Failed to seed account catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Account catalog ready", slog.Int("accounts_created", created))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, res.Repos.Store, recorder.Handler(), middleware.RateLimit(limiter))
	setupSwaggerRoutes(r, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited gracefully")
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// no swagger in prod
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.Host = ""
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
