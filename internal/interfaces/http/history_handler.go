package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gpstudio/billing-api/internal/application/billing"
	"github.com/gpstudio/billing-api/internal/application/dto"
)

// HistoryHandler maneja el historial de facturas persistidas.
type HistoryHandler struct {
	history *billing.HistoryUseCase
	export  *billing.ExportUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(history *billing.HistoryUseCase, export *billing.ExportUseCase) *HistoryHandler {
	return &HistoryHandler{history: history, export: export}
}

// List lista el historial, más reciente primero. ?search= filtra por
// nombre de cliente o número de factura.
// GET /api/invoices
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	records, err := h.history.List(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToHistoryItems(records))
}

// GetByID devuelve el detalle completo de una factura histórica.
// GET /api/invoices/:id
func (h *HistoryHandler) GetByID(c *fiber.Ctx) error {
	record, err := h.history.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToRecordResponse(record))
}

// DownloadPDF re-exporta el PDF de una factura histórica sin volver a
// persistirla.
// GET /api/invoices/:id/pdf
func (h *HistoryHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.export.ExportByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
