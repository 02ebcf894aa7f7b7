package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wareline/supplydesk-api/internal/application/auth"
	"github.com/wareline/supplydesk-api/internal/application/billing"
	"github.com/wareline/supplydesk-api/internal/application/catalog"
	"github.com/wareline/supplydesk-api/internal/application/inventory"
	"github.com/wareline/supplydesk-api/internal/application/orders"
	infrapdf "github.com/wareline/supplydesk-api/internal/infrastructure/pdf"
	"github.com/wareline/supplydesk-api/internal/infrastructure/postgres"
	httpRouter "github.com/wareline/supplydesk-api/internal/interfaces/http"
	"github.com/wareline/supplydesk-api/pkg/config"
	"github.com/wareline/supplydesk-api/pkg/logger"
	"github.com/wareline/supplydesk-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if cfg.App.Env == "development" && cfg.DB.AutoMigrate {
		log.Info().Msg("running embedded migrations (dev auto-run)")
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migrations")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	billingMetrics := metrics.NewBillingMetrics(registry)

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	renderer := infrapdf.NewMarotoInvoiceRenderer()
	generateInvoiceUC := billing.NewGenerateInvoiceUseCase(
		txRunner, productRepo, invoiceRepo, renderer,
		billing.Config{
			OutputDir:    cfg.Billing.OutputDir,
			NumberPrefix: cfg.Billing.NumberPrefix,
			Company: billing.CompanyInfo{
				Name:    cfg.Billing.CompanyName,
				Address: cfg.Billing.CompanyAddress,
				City:    cfg.Billing.CompanyCity,
				Phone:   cfg.Billing.CompanyPhone,
			},
		},
		log, billingMetrics,
	)

	catalogUC := catalog.NewCatalogUseCase(productRepo)
	ordersUC := orders.NewOrdersUseCase(orderRepo)
	inventoryUC := inventory.NewInventoryUseCase(inventoryRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SupplyDesk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		GenerateInvoice: generateInvoiceUC,
		CatalogUC:       catalogUC,
		OrdersUC:        ordersUC,
		InventoryUC:     inventoryUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
