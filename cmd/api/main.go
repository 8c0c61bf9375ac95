package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sbkgestion/stock-api/internal/application/accounting"
	"github.com/sbkgestion/stock-api/internal/application/catalog"
	"github.com/sbkgestion/stock-api/internal/application/documents"
	"github.com/sbkgestion/stock-api/internal/application/ledger"
	"github.com/sbkgestion/stock-api/internal/application/sequence"
	"github.com/sbkgestion/stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/sbkgestion/stock-api/internal/interfaces/http"
	"github.com/sbkgestion/stock-api/pkg/config"
	"github.com/sbkgestion/stock-api/pkg/logger"
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
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	salesRepo := postgres.NewSalesInvoiceRepository(pool)
	purchaseRepo := postgres.NewPurchaseInvoiceRepository(pool)
	exitRepo := postgres.NewExitNoteRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	sequenceRepo := postgres.NewSequenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	codes := sequence.NewGenerator(sequenceRepo)
	engine := ledger.NewEngine()

	productUC := catalog.NewProductUseCase(productRepo, codes)
	clientUC := catalog.NewClientUseCase(clientRepo, codes)
	supplierUC := catalog.NewSupplierUseCase(supplierRepo, codes)
	salesUC := documents.NewSalesInvoiceUseCase(txRunner, engine, clientRepo, productRepo, salesRepo)
	purchaseUC := documents.NewPurchaseInvoiceUseCase(txRunner, engine, supplierRepo, productRepo, purchaseRepo)
	exitUC := documents.NewExitNoteUseCase(txRunner, engine, productRepo, exitRepo)
	rollupUC := accounting.NewRollupUseCase(summaryRepo, salesRepo, purchaseRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:         productUC,
		ClientUC:          clientUC,
		SupplierUC:        supplierUC,
		SalesInvoiceUC:    salesUC,
		PurchaseInvoiceUC: purchaseUC,
		ExitNoteUC:        exitUC,
		RollupUC:          rollupUC,
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
