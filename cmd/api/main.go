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
	"github.com/joho/godotenv"

	"github.com/dkolor/cotizador-api/internal/application/state"
	"github.com/dkolor/cotizador-api/internal/application/usecase"
	"github.com/dkolor/cotizador-api/internal/infrastructure/excel"
	"github.com/dkolor/cotizador-api/internal/infrastructure/jsonstore"
	infrapdf "github.com/dkolor/cotizador-api/internal/infrastructure/pdf"
	httpRouter "github.com/dkolor/cotizador-api/internal/interfaces/http"
	"github.com/dkolor/cotizador-api/pkg/config"
	"github.com/dkolor/cotizador-api/pkg/logger"
)

func main() {
	// .env local opcional; las env vars reales tienen prioridad.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	store := jsonstore.New(cfg.Store.Path, cfg.Store.SeedDir, log)
	st, err := state.New(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado")
	}

	xls := excel.NewAdapter(cfg.Doc.BusinessName, cfg.Doc.Footnote)
	pdfGenerator := infrapdf.NewQuotePDFGenerator(cfg.Doc.BusinessName, cfg.Doc.Footnote)

	productUC := usecase.NewProductUseCase(st)
	clientUC := usecase.NewClientUseCase(st)
	quoteUC := usecase.NewQuoteUseCase(st, pdfGenerator, xls)
	transferUC := usecase.NewTransferUseCase(st, xls, xls, store)
	dashboardUC := usecase.NewDashboardUseCase(st)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports PDF/Excel pueden tardar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // libros Excel de importación
	})
	app.Use(recover.New())
	app.Use(log.RequestLogger())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cotizador API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		ClientUC:    clientUC,
		QuoteUC:     quoteUC,
		TransferUC:  transferUC,
		DashboardUC: dashboardUC,
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
