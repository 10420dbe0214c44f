package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gpstudio/billing-api/internal/application/dto"
	"github.com/gpstudio/billing-api/internal/domain/entity"
)

// CatalogHandler expone los catálogos fijos del estudio.
type CatalogHandler struct{}

// NewCatalogHandler construye el handler.
func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

// Events lista los tipos de evento disponibles.
// GET /api/catalog/events
func (h *CatalogHandler) Events(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{Items: entity.EventTypes})
}

// Services lista los nombres de servicio predefinidos.
// GET /api/catalog/services
func (h *CatalogHandler) Services(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogResponse{Items: entity.ServiceNames})
}
