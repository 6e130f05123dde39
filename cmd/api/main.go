package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/hygia/crm-backend/internal/application/billing"
	"github.com/hygia/crm-backend/internal/application/usecase"
	"github.com/hygia/crm-backend/internal/domain/entity"
	"github.com/hygia/crm-backend/internal/domain/repository"
	infrapdf "github.com/hygia/crm-backend/internal/infrastructure/pdf"
	"github.com/hygia/crm-backend/internal/infrastructure/postgres"
	httpRouter "github.com/hygia/crm-backend/internal/interfaces/http"
	"github.com/hygia/crm-backend/pkg/config"
	"github.com/hygia/crm-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	regionRepo := postgres.NewRegionRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	visitRepo := postgres.NewVisitLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Regiones de ejemplo solo en desarrollo y solo si la tabla está vacía.
	if cfg.App.Env == "development" {
		if err := seedRegions(regionRepo); err != nil {
			log.Warn().Err(err).Msg("seed de regiones")
		}
	}

	customerUC := usecase.NewCustomerUseCase(customerRepo, regionRepo)
	regionUC := usecase.NewRegionUseCase(regionRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	visitUC := usecase.NewVisitUseCase(visitRepo, customerRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, customerRepo, productRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hygia CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:    customerUC,
		RegionUC:      regionUC,
		ProductUC:     productUC,
		VisitUC:       visitUC,
		CreateInvoice: createInvoiceUC,
		InvoicePDF:    invoicePDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedRegions inserta regiones de ejemplo si la tabla está vacía.
func seedRegions(regionRepo repository.RegionRepository) error {
	count, err := regionRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seeds := []entity.Region{
		{Name: "Seattle", State: "WA"},
		{Name: "San Francisco", State: "CA"},
		{Name: "Los Angeles", State: "CA"},
	}
	for i := range seeds {
		seeds[i].ID = uuid.New().String()
		if err := regionRepo.Create(&seeds[i]); err != nil {
			return err
		}
	}
	return nil
}
