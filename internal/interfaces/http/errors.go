package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gpstudio/billing-api/internal/application/dto"
	"github.com/gpstudio/billing-api/internal/domain"
)

// respondError traduce los errores del dominio a respuestas HTTP. Los
// sentinelas viajan envueltos con %w, por eso errors.Is y no comparación
// directa.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrPrecondition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PRECONDITION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	case errors.Is(err, domain.ErrAllocation):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ALLOCATION", Message: err.Error()})
	case errors.Is(err, domain.ErrExport):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
