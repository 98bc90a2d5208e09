package main

import (
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/catalog-inventory/services/internal/config"
	"github.com/catalog-inventory/services/internal/directory"
	"github.com/catalog-inventory/services/internal/inventory/handlers"
	"github.com/catalog-inventory/services/internal/inventory/repository"
	"github.com/catalog-inventory/services/internal/inventory/service"
	"github.com/catalog-inventory/services/internal/observability"
	"github.com/catalog-inventory/services/internal/observability/oteltrace"
	"github.com/catalog-inventory/services/internal/observability/prometrics"
	"github.com/catalog-inventory/services/internal/observability/zaplogger"
	"github.com/catalog-inventory/services/internal/shared/health"
	"github.com/catalog-inventory/services/internal/shared/httpapi"
	"github.com/catalog-inventory/services/internal/shared/middleware"
)

func main() {
	log := zaplogger.New(observability.F("service", "inventory-service"))
	cfg := config.Load("3001", "inventory_db")

	db, err := initDatabase(cfg, log)
	if err != nil {
		log.Error("database connection failed", observability.F("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	metrics := prometrics.New("inventory", "http")
	requests := metrics.Counter("requests_total", "HTTP requests handled.", "method", "route", "status")
	duration := metrics.Histogram("request_duration_seconds", "HTTP request latency.", nil, "method", "route", "status")
	retries := metrics.Counter("directory_retries_total", "Retried directory calls to the products service.")
	tracer := oteltrace.New("inventory-service")

	directoryClient := directory.NewHTTPClient(cfg.Directory, log, tracer,
		directory.WithRetryCounter(retries))
	inventoryRepo := repository.NewInventoryRepository(db)
	inventoryService := service.NewInventoryService(inventoryRepo, directoryClient, log, tracer)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	app := setupFiberApp(log)
	app.Use(middleware.Metrics(requests, duration))

	app.Get("/health", health.Handler(db, log))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/", middleware.APIKey(cfg.APIKey, log))
	inventoryHandler.Register(api)

	app.Use(func(c *fiber.Ctx) error {
		return httpapi.Error(c, fiber.StatusNotFound, "not_found", "Route not found")
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down inventory service")
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown error", observability.F("error", err.Error()))
		}
	}()

	log.Info("inventory service listening",
		observability.F("port", cfg.Port),
		observability.F("productsBaseURL", cfg.Directory.BaseURL),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server startup failed", observability.F("error", err.Error()))
		os.Exit(1)
	}
}

func initDatabase(cfg config.Config, log observability.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	log.Info("database connected", observability.F("database", cfg.DB.Name))
	return db, nil
}

func setupFiberApp(log observability.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Inventory Service v1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Error("unhandled error",
				observability.F("method", c.Method()),
				observability.F("path", c.Path()),
				observability.F("error", err.Error()),
			)
			return httpapi.Error(c, code, "internal_error", err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} - ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,x-api-key,X-Request-ID",
	}))

	return app
}
