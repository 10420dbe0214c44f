package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gpstudio/billing-api/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SetEventsRequest body para PUT /api/draft/events: reemplazo total de la
// lista. Los montos aceptan número o texto JSON (decimal coerciona ambos).
type SetEventsRequest struct {
	Events []EventBlockRequest `json:"events"`
}

// EventBlockRequest un evento del borrador. El ID se conserva si viene; si
// va vacío el motor acuña uno.
type EventBlockRequest struct {
	ID        string               `json:"id,omitempty"`
	EventType string               `json:"eventType"`
	Services  []ServiceLineRequest `json:"services"`
}

// ServiceLineRequest una línea de servicio.
type ServiceLineRequest struct {
	ID     string          `json:"id,omitempty"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SetClientRequest body para PUT /api/draft/client. Los campos ausentes no
// tocan el borrador; advance ausente vuelve a 0. Fechas en RFC 3339.
type SetClientRequest struct {
	Name       *string          `json:"name,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	EventDate  *time.Time       `json:"eventDate,omitempty"`
	DateIssued *time.Time       `json:"dateIssued,omitempty"`
	Advance    *decimal.Decimal `json:"advance,omitempty"`
}

// DraftResponse snapshot del borrador para GET /api/draft.
type DraftResponse struct {
	Client entity.ClientInfo   `json:"client"`
	Events []entity.EventBlock `json:"events"`
}

// RecordResponse registro terminal (factura o cotización) en respuestas.
type RecordResponse struct {
	ID        string              `json:"id"`
	Client    entity.ClientInfo   `json:"client"`
	Events    []entity.EventBlock `json:"events"`
	Subtotal  decimal.Decimal     `json:"subtotal"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
	Mode      entity.Mode         `json:"mode"`
}

// HistoryItemResponse fila del historial (listado compacto).
type HistoryItemResponse struct {
	ID         string          `json:"id"`
	ClientName string          `json:"clientName"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// CatalogResponse catálogo fijo (eventos o servicios).
type CatalogResponse struct {
	Items []string `json:"items"`
}

// ToRecordResponse proyecta la entidad a su DTO.
func ToRecordResponse(rec *entity.Invoice) RecordResponse {
	return RecordResponse{
		ID:        rec.ID,
		Client:    rec.Client,
		Events:    rec.Events,
		Subtotal:  rec.Subtotal,
		Total:     rec.Total,
		CreatedAt: rec.CreatedAt,
		Mode:      rec.Mode,
	}
}

// ToHistoryItems proyecta el listado del historial.
func ToHistoryItems(records []*entity.Invoice) []HistoryItemResponse {
	out := make([]HistoryItemResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, HistoryItemResponse{
			ID:         rec.ID,
			ClientName: rec.Client.Name,
			Total:      rec.Total,
			CreatedAt:  rec.CreatedAt,
		})
	}
	return out
}

// ToEventBlocks convierte el request en entidades del dominio.
func ToEventBlocks(in []EventBlockRequest) []entity.EventBlock {
	out := make([]entity.EventBlock, 0, len(in))
	for _, ev := range in {
		block := entity.EventBlock{ID: ev.ID, EventType: ev.EventType}
		for _, s := range ev.Services {
			block.Services = append(block.Services, entity.ServiceLine{
				ID: s.ID, Name: s.Name, Amount: s.Amount,
			})
		}
		out = append(out, block)
	}
	return out
}
