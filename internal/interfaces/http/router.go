package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gpstudio/billing-api/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session  *billing.Session
	Finalize *billing.FinalizeUseCase
	Export   *billing.ExportUseCase
	History  *billing.HistoryUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Borrador (flujo de creación en curso)
	draft := api.Group("/draft")
	draftHandler := NewDraftHandler(deps.Session)
	draft.Post("/start", draftHandler.Start)
	draft.Put("/events", draftHandler.SetEvents)
	draft.Put("/client", draftHandler.SetClient)
	draft.Get("/", draftHandler.Get)

	// Finalización y exportación
	billingHandler := NewBillingHandler(deps.Finalize, deps.Export)
	api.Post("/invoices/finalize", billingHandler.FinalizeInvoice)
	api.Post("/quotations", billingHandler.BuildQuotation)
	api.Post("/export", billingHandler.Export)

	// Historial
	historyHandler := NewHistoryHandler(deps.History, deps.Export)
	api.Get("/invoices", historyHandler.List)
	api.Get("/invoices/:id", historyHandler.GetByID)
	api.Get("/invoices/:id/pdf", historyHandler.DownloadPDF)

	// Catálogos fijos
	catalogHandler := NewCatalogHandler()
	api.Get("/catalog/events", catalogHandler.Events)
	api.Get("/catalog/services", catalogHandler.Services)
}
