package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gpstudio/billing-api/internal/application/billing"
	"github.com/gpstudio/billing-api/internal/application/dto"
)

// BillingHandler maneja finalización y exportación del flujo activo.
type BillingHandler struct {
	finalize *billing.FinalizeUseCase
	export   *billing.ExportUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(finalize *billing.FinalizeUseCase, export *billing.ExportUseCase) *BillingHandler {
	return &BillingHandler{finalize: finalize, export: export}
}

// FinalizeInvoice congela el borrador como factura: totales + número
// asignado. No persiste nada; eso ocurre recién al exportar.
// POST /api/invoices/finalize
func (h *BillingHandler) FinalizeInvoice(c *fiber.Ctx) error {
	record, err := h.finalize.FinalizeInvoice(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToRecordResponse(record))
}

// BuildQuotation congela el borrador como cotización: sin número y sin
// descontar el anticipo.
// POST /api/quotations
func (h *BillingHandler) BuildQuotation(c *fiber.Ctx) error {
	record, err := h.finalize.BuildQuotation(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToRecordResponse(record))
}

// Export genera el PDF del registro terminal y, si es factura, lo persiste.
// Responde los bytes del PDF con nombre de descarga.
// POST /api/export
func (h *BillingHandler) Export(c *fiber.Ctx) error {
	pdf, filename, err := h.export.ExportCurrent(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
