package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/gpstudio/billing-api/internal/domain"
	"github.com/gpstudio/billing-api/internal/domain/numbering"
)

// NumberAllocator asigna el siguiente número de factura. Si falla, la
// finalización aborta y el borrador queda intacto para reintentar.
type NumberAllocator interface {
	Allocate(ctx context.Context) (string, error)
}

// InvoiceCounter subconjunto del almacén que necesita el asignador por conteo.
type InvoiceCounter interface {
	CountCreatedOnOrAfter(ctx context.Context, t time.Time) (int, error)
}

// CountAllocator reproduce el esquema original: cuenta las facturas
// persistidas desde la medianoche local y formatea conteo+1.
//
// OJO: leer-y-formatear no es atómico. Dos finalizaciones simultáneas del
// mismo día pueden acuñar el mismo número. El supuesto operativo es un solo
// escritor a la vez; para uso concurrente cambiar a SequenceAllocator
// (BILLING_NUMBERING=sequence).
type CountAllocator struct {
	counter InvoiceCounter
	prefix  string
	loc     *time.Location
	now     func() time.Time
}

// NewCountAllocator construye el asignador. loc define la "medianoche local"
// que acota la secuencia del día; nil usa time.Local.
func NewCountAllocator(counter InvoiceCounter, prefix string, loc *time.Location) *CountAllocator {
	if prefix == "" {
		prefix = numbering.DefaultPrefix
	}
	if loc == nil {
		loc = time.Local
	}
	return &CountAllocator{counter: counter, prefix: prefix, loc: loc, now: time.Now}
}

// Allocate consulta el conteo del día en el almacén y devuelve conteo+1 ya
// formateado. Cualquier fallo de la consulta se reporta como ErrAllocation
// sin producir número.
func (a *CountAllocator) Allocate(ctx context.Context) (string, error) {
	now := a.now().In(a.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)

	count, err := a.counter.CountCreatedOnOrAfter(ctx, midnight)
	if err != nil {
		return "", fmt.Errorf("%w: contar facturas del día: %v", domain.ErrAllocation, err)
	}
	return numbering.Format(a.prefix, now, count+1), nil
}
