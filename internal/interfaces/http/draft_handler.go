package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gpstudio/billing-api/internal/application/billing"
	"github.com/gpstudio/billing-api/internal/application/dto"
)

// DraftHandler maneja el flujo de creación en curso.
type DraftHandler struct {
	session *billing.Session
}

// NewDraftHandler construye el handler.
func NewDraftHandler(session *billing.Session) *DraftHandler {
	return &DraftHandler{session: session}
}

// Start descarta el borrador anterior y abre uno nuevo.
// POST /api/draft/start
func (h *DraftHandler) Start(c *fiber.Ctx) error {
	h.session.Start()
	draft, _ := h.session.Snapshot()
	return c.Status(fiber.StatusCreated).JSON(dto.DraftResponse{
		Client: draft.Client,
		Events: draft.Events,
	})
}

// SetEvents reemplaza la lista completa de eventos del borrador.
// PUT /api/draft/events
func (h *DraftHandler) SetEvents(c *fiber.Ctx) error {
	var in dto.SetEventsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.session.SetEvents(dto.ToEventBlocks(in.Events))
	draft, _ := h.session.Snapshot()
	return c.JSON(dto.DraftResponse{Client: draft.Client, Events: draft.Events})
}

// SetClient fusiona los campos presentes sobre el cliente del borrador.
// PUT /api/draft/client
func (h *DraftHandler) SetClient(c *fiber.Ctx) error {
	var in dto.SetClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.session.SetClient(billing.ClientPatch{
		Name:       in.Name,
		Phone:      in.Phone,
		EventDate:  in.EventDate,
		DateIssued: in.DateIssued,
		Advance:    in.Advance,
	})
	draft, _ := h.session.Snapshot()
	return c.JSON(dto.DraftResponse{Client: draft.Client, Events: draft.Events})
}

// Get devuelve el snapshot del borrador activo.
// GET /api/draft
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	draft, ok := h.session.Snapshot()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay flujo activo"})
	}
	return c.JSON(dto.DraftResponse{Client: draft.Client, Events: draft.Events})
}
