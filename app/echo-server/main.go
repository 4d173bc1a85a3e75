package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"myHousePrice/app/echo-server/router"
	"myHousePrice/business/pricing"
	"myHousePrice/internal/middleware"
	"myHousePrice/internal/repository/artifact"
	psqlRepo "myHousePrice/internal/repository/postgres"
	redisRepo "myHousePrice/internal/repository/redis"
	"myHousePrice/internal/rest"
	"myHousePrice/pkg/config"
	"myHousePrice/pkg/database"
	redisdb "myHousePrice/pkg/database/redis"
	"myHousePrice/pkg/logger"
	"myHousePrice/pkg/metrics"
	"myHousePrice/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting House Price Valuation API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Model artifacts: missing or unreadable artifacts are fatal, the
	// service must not come up without them.
	schema, err := artifact.LoadFeatureSchema(cfg.Model.FeaturesPath)
	if err != nil {
		logger.Fatal("Failed to load feature schema", "error", err)
	}

	model, err := artifact.NewLinearModel(cfg.Model.ModelPath, schema)
	if err != nil {
		logger.Fatal("Failed to load model", "error", err)
	}

	logger.Info("Model artifacts loaded", "features", len(schema))

	aligner, err := pricing.NewFeatureAligner(schema)
	if err != nil {
		logger.Fatal("Failed to build feature aligner", "error", err)
	}

	composer := pricing.NewExplanationComposer(cfg.Pricing.DefaultTopN)

	// Response cache is optional: without Redis the service still serves,
	// it just recomputes.
	var cache pricing.ValuationCache
	if redisClient, err := redisdb.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, serving without valuation cache", "error", err)
	} else {
		defer func() { _ = redisdb.CloseRedisClient(redisClient) }()
		cache = redisRepo.NewValuationCache(redisClient, time.Duration(cfg.Pricing.CacheTTLSeconds)*time.Second)
	}

	// Init repo
	valuationRepo := psqlRepo.NewValuationRepository(db)

	// Init service
	pricingService := pricing.NewPricingService(aligner, composer, model, model, valuationRepo, cache)

	// Init handler
	valuationHandler := rest.NewValuationHandler(pricingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetValuationRoutes(api, valuationHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
