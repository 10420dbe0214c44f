package repository

import (
	"context"
	"time"

	"github.com/gpstudio/billing-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia del almacén durable.
// Solo se escriben registros en modo factura; las cotizaciones nunca pasan
// por Put.
type InvoiceRepository interface {
	// Put persiste el registro finalizado, keyed por su ID.
	Put(ctx context.Context, record *entity.Invoice) error
	// GetByID devuelve la factura o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// CountCreatedOnOrAfter cuenta las facturas persistidas con
	// createdAt >= t. Lo usa el asignador de números para la secuencia del día.
	CountCreatedOnOrAfter(ctx context.Context, t time.Time) (int, error)
	// List devuelve el historial ordenado por createdAt descendente,
	// filtrado por nombre de cliente o número de factura (substring).
	List(ctx context.Context, search string) ([]*entity.Invoice, error)
}
