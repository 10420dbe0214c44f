package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gpstudio/billing-api/internal/application/billing"
	"github.com/gpstudio/billing-api/internal/domain/numbering"
	infrapdf "github.com/gpstudio/billing-api/internal/infrastructure/pdf"
	"github.com/gpstudio/billing-api/internal/infrastructure/postgres"
	httpRouter "github.com/gpstudio/billing-api/internal/interfaces/http"
	"github.com/gpstudio/billing-api/pkg/config"
	"github.com/gpstudio/billing-api/pkg/logger"
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

	loc, err := time.LoadLocation(cfg.Billing.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Billing.Timezone).Msg("zona horaria inválida")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)

	prefix := cfg.Billing.Prefix
	if prefix == "" {
		prefix = numbering.DefaultPrefix
	}

	// Asignador de números: conteo del día (fiel al flujo original, un solo
	// escritor) o secuencia atómica en la base.
	var allocator billing.NumberAllocator
	switch cfg.Billing.Numbering {
	case "sequence":
		allocator = postgres.NewSequenceAllocator(pool, prefix, loc)
	default:
		allocator = billing.NewCountAllocator(invoiceRepo, prefix, loc)
	}
	log.Component("numbering").Info().
		Str("strategy", cfg.Billing.Numbering).
		Str("prefix", prefix).
		Str("tz", cfg.Billing.Timezone).
		Msg("numeración configurada")

	session := billing.NewSession()
	pdfGenerator := infrapdf.NewMarotoGenerator()
	finalizeUC := billing.NewFinalizeUseCase(session, allocator)
	exportUC := billing.NewExportUseCase(session, invoiceRepo, pdfGenerator)
	historyUC := billing.NewHistoryUseCase(invoiceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:  session,
		Finalize: finalizeUC,
		Export:   exportUC,
		History:  historyUC,
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
