package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mode distingue factura (numerada, persistida, con anticipo descontado)
// de cotización (sin número, efímera, subtotal completo).
type Mode string

const (
	ModeInvoice   Mode = "invoice"
	ModeQuotation Mode = "quotation"
)

// ServiceLine es una línea de servicio dentro de un evento. Pertenece en
// exclusiva a su EventBlock; nunca se comparte entre eventos.
type ServiceLine struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// EventBlock agrupa las líneas de servicio de un tipo de evento seleccionado.
// El ID se conserva cuando el usuario navega hacia atrás, para no perder las
// ediciones en curso de sus líneas.
type EventBlock struct {
	ID        string        `json:"id"`
	EventType string        `json:"eventType"`
	Services  []ServiceLine `json:"services"`
}

// ClientInfo son los datos del cliente del borrador. EventDate y DateIssued
// solo tienen significado en modo factura.
type ClientInfo struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	EventDate  *time.Time      `json:"eventDate,omitempty"`
	DateIssued *time.Time      `json:"dateIssued,omitempty"`
	Advance    decimal.Decimal `json:"advance"`
}

// Invoice es el registro terminal e inmutable de un flujo: factura o
// cotización ya calculada, lista para renderizar o exportar.
//
// Invariantes:
//   - Subtotal = suma de todos los montos de todas las líneas.
//   - Modo factura: Total = max(Subtotal - Advance, 0).
//   - Modo cotización: Total = Subtotal (el anticipo nunca se descuenta).
//   - ID no vacío y único entre facturas persistidas si y solo si Mode = ModeInvoice.
type Invoice struct {
	ID        string          `json:"id"`
	Client    ClientInfo      `json:"client"`
	Events    []EventBlock    `json:"events"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	Mode      Mode            `json:"mode"`
}
