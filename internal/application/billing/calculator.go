package billing

import (
	"github.com/shopspring/decimal"

	"github.com/gpstudio/billing-api/internal/domain/entity"
)

// Subtotal suma todos los montos de todas las líneas de todos los eventos.
// Aritmética decimal exacta; el valor cero de decimal ya cubre montos
// ausentes, así que nunca falla.
func Subtotal(events []entity.EventBlock) decimal.Decimal {
	total := decimal.Zero
	for _, ev := range events {
		for _, s := range ev.Services {
			total = total.Add(s.Amount)
		}
	}
	return total
}

// Totals calcula subtotal y total según el modo. Factura y cotización pasan
// por aquí; el único punto donde divergen es el descuento del anticipo.
//
//	factura:    total = max(subtotal - advance, 0)
//	cotización: total = subtotal (el anticipo se ignora)
func Totals(events []entity.EventBlock, mode entity.Mode, advance decimal.Decimal) (subtotal, total decimal.Decimal) {
	subtotal = Subtotal(events)
	if mode != entity.ModeInvoice {
		return subtotal, subtotal
	}
	total = subtotal.Sub(advance)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return subtotal, total
}
