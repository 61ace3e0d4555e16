package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	customersHttp "kokko-factory-service/internal/customers/adapters/http/fiber"
	customersRepoPg "kokko-factory-service/internal/customers/adapters/postgres"
	customersUsecase "kokko-factory-service/internal/customers/core/usecase"

	flockHttp "kokko-factory-service/internal/flock/adapters/http/fiber"
	flockRepoPg "kokko-factory-service/internal/flock/adapters/postgres"
	flockUsecase "kokko-factory-service/internal/flock/core/usecase"

	inventoryHttp "kokko-factory-service/internal/inventory/adapters/http/fiber"
	inventoryRepoPg "kokko-factory-service/internal/inventory/adapters/postgres"
	inventoryUsecase "kokko-factory-service/internal/inventory/core/usecase"

	marketingHttp "kokko-factory-service/internal/marketing/adapters/http/fiber"
	marketingRepoPg "kokko-factory-service/internal/marketing/adapters/postgres"
	marketingUsecase "kokko-factory-service/internal/marketing/core/usecase"

	predictionHttp "kokko-factory-service/internal/prediction/adapters/http/fiber"
	predictionRepoPg "kokko-factory-service/internal/prediction/adapters/postgres"
	predictionDomain "kokko-factory-service/internal/prediction/core/domain"
	predictionUsecase "kokko-factory-service/internal/prediction/core/usecase"

	shipmentsHttp "kokko-factory-service/internal/shipments/adapters/http/fiber"
	shipmentsRepoPg "kokko-factory-service/internal/shipments/adapters/postgres"
	shipmentsUsecase "kokko-factory-service/internal/shipments/core/usecase"

	"kokko-factory-service/internal/platform/cache"
	"kokko-factory-service/internal/platform/config"
	"kokko-factory-service/internal/platform/logger"
	"kokko-factory-service/internal/platform/metrics"
	"kokko-factory-service/internal/platform/migrate"
	"kokko-factory-service/internal/platform/sqldb"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "kokko-factory-service/docs"
)

// @title Kokko Factory API
// @version 1.0
// @description Poultry farm records, stock management and production analytics.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog := logger.New(logger.Options{
		ServiceName: "kokko-factory-service",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx := context.Background()

	loc, err := cfg.Charts.Location()
	if err != nil {
		appLog.Fatal(ctx, "invalid time zone", err)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		appLog.Fatal(ctx, "failed to open postgres", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		appLog.Fatal(ctx, "failed to ping postgres", err)
	}

	if cfg.App.AutoMigrate {
		if err := migrate.Run(ctx, db, "up"); err != nil {
			appLog.Fatal(ctx, "failed to migrate", err)
		}
	}

	// Chart cache
	var chartCache cache.Cache = cache.Noop{}
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedis(ctx, cfg.Redis.URL, cfg.Charts.CacheTTL)
		if err != nil {
			appLog.Warn(ctx, "redis unavailable, chart cache disabled", err)
		} else {
			defer rc.Close()
			chartCache = rc
		}
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.New(reg)

	sqlDB := sqldb.New(db)

	// Repositories
	flockRepository := flockRepoPg.NewFlockRepository(sqlDB)
	customerRepository := customersRepoPg.NewCustomerRepository(sqlDB)
	shipmentRepository := shipmentsRepoPg.NewShipmentRepository(sqlDB)
	inventoryRepository := inventoryRepoPg.NewInventoryRepository(sqlDB)
	shipmentReader := marketingRepoPg.NewShipmentReader(sqlDB)
	sampleRepository := predictionRepoPg.NewSampleRepository(sqlDB)

	// Usecases
	eggUC := flockUsecase.NewEggUseCase(flockRepository)
	deathUC := flockUsecase.NewDeathUseCase(flockRepository)
	customerUC := customersUsecase.NewCustomerUseCase(customerRepository)
	shipmentUC := shipmentsUsecase.NewShipmentUseCase(shipmentRepository, loc).WithChartCache(chartCache, appLog)
	inventoryUC := inventoryUsecase.NewInventoryUseCase(inventoryRepository, cfg.Inventory.DefaultAlertThreshold)
	shipmentChartUC := marketingUsecase.NewShipmentChartUseCase(shipmentReader, chartCache, httpMetrics, loc, appLog)
	sampleUC := predictionUsecase.NewPredictionUseCase(sampleRepository, predictionDomain.DefaultModel).
		WithChartCache(chartCache, appLog)
	predictionChartUC := predictionUsecase.NewPredictionChartUseCase(
		sampleRepository, chartCache, httpMetrics, predictionDomain.DefaultModel, loc, appLog)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: !cfg.App.IsDev()})
	app.Use(appLog.Middleware())
	app.Use(httpMetrics.Middleware())

	flockHttp.NewFlockHandler(eggUC, deathUC, appLog).Register(app)
	customersHttp.NewCustomerHandler(customerUC, appLog).Register(app)
	shipmentsHttp.NewShipmentHandler(shipmentUC, appLog).Register(app)
	inventoryHttp.NewInventoryHandler(inventoryUC, appLog).Register(app)
	marketingHttp.NewMarketingHandler(shipmentChartUC, appLog).Register(app)
	predictionHttp.NewPredictionHandler(sampleUC, predictionChartUC, appLog).Register(app)

	app.Get("/internal/metrics", httpMetrics.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			appLog.Error(ctx, "fiber stopped", err)
		}
	}()

	appLog.Info(ctx, "server started on "+cfg.HTTP.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	appLog.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLog.Error(ctx, "fiber shutdown error", err)
	}

	appLog.Info(ctx, "server exiting")
}
