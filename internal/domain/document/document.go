// Package document define la proyección imprimible de un registro
// finalizado: un árbol estructurado y autocontenido (no texto plano) que el
// generador de PDF recorre sección por sección.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GP STUDIO            │  INVOICE/QUOTATION + N°      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + teléfono (+ fechas solo en factura)       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Una tabla por evento: Servicio | Monto                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Anticipo (solo factura) / TOTAL         │
//	└─────────────────────────────────────────────────────────────┘
package document

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gpstudio/billing-api/internal/domain/entity"
)

// StudioName marca del encabezado.
const StudioName = "GP STUDIO"

// Etiquetas según el modo.
const (
	LabelInvoice   = "INVOICE"
	LabelQuotation = "QUOTATION"
)

// Document es la representación imprimible completa de un registro.
type Document struct {
	Branding string
	Label    string // "INVOICE" o "QUOTATION"
	Number   string // vacío en cotizaciones
	Client   ClientBlock
	Events   []EventTable
	Totals   TotalsBlock
}

// ClientBlock bloque de datos del cliente. Las fechas van ya formateadas;
// en modo cotización quedan vacías.
type ClientBlock struct {
	Name       string
	Phone      string
	EventDate  string
	DateIssued string
}

// EventTable una tabla por evento, con sus líneas de servicio en el orden
// del registro.
type EventTable struct {
	Title string
	Rows  []ServiceRow
}

// ServiceRow una línea de servicio con el monto ya formateado.
type ServiceRow struct {
	Name   string
	Amount string
}

// TotalsBlock bloque de totales. Advance solo se muestra en facturas.
type TotalsBlock struct {
	Subtotal    string
	Advance     string // vacío en cotizaciones
	Total       string
	ShowAdvance bool
}

const dateLayout = "02/01/2006"

// Build proyecta un registro finalizado a su Document. Es determinista e
// idempotente: el mismo registro produce siempre el mismo árbol, y nunca
// muta el registro ni toca el almacén.
func Build(record entity.Invoice) Document {
	doc := Document{
		Branding: StudioName,
		Label:    LabelQuotation,
		Client: ClientBlock{
			Name:  record.Client.Name,
			Phone: record.Client.Phone,
		},
		Totals: TotalsBlock{
			Subtotal: FormatAmount(record.Subtotal),
			Total:    FormatAmount(record.Total),
		},
	}

	if record.Mode == entity.ModeInvoice {
		doc.Label = LabelInvoice
		doc.Number = record.ID
		doc.Client.EventDate = formatDate(record.Client.EventDate)
		doc.Client.DateIssued = formatDate(record.Client.DateIssued)
		doc.Totals.Advance = FormatAmount(record.Client.Advance)
		doc.Totals.ShowAdvance = true
	}

	doc.Events = make([]EventTable, 0, len(record.Events))
	for _, ev := range record.Events {
		table := EventTable{Title: ev.EventType, Rows: make([]ServiceRow, 0, len(ev.Services))}
		for _, s := range ev.Services {
			table.Rows = append(table.Rows, ServiceRow{
				Name:   s.Name,
				Amount: FormatAmount(s.Amount),
			})
		}
		doc.Events = append(doc.Events, table)
	}
	return doc
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatAmount formatea un monto en rupias con agrupación india:
// 5000 → "₹5,000"; 1234567 → "₹12,34,567". Los decimales solo aparecen si
// el monto no es entero.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	intPart := s[:len(s)-3]
	frac := s[len(s)-2:]

	neg := false
	if len(intPart) > 0 && intPart[0] == '-' {
		neg = true
		intPart = intPart[1:]
	}

	out := "₹" + groupIndian(intPart)
	if neg {
		out = "-" + out
	}
	if frac != "00" {
		out += "." + frac
	}
	return out
}

// groupIndian inserta comas al estilo indio: los tres últimos dígitos y
// luego grupos de dos. "1234567" → "12,34,567".
func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	head := s[:n-3]
	out := ""
	for len(head) > 2 {
		out = "," + head[len(head)-2:] + out
		head = head[:len(head)-2]
	}
	return head + out + "," + s[n-3:]
}
