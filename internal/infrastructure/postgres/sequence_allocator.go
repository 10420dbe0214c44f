package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/gpstudio/billing-api/internal/application/billing"
	"github.com/gpstudio/billing-api/internal/domain"
	"github.com/gpstudio/billing-api/internal/domain/numbering"
)

var _ billing.NumberAllocator = (*SequenceAllocator)(nil)

// SequenceAllocator asigna números con una secuencia por día mantenida en
// la base: UPSERT + RETURNING sobre una fila keyed por fecha, atómico a
// nivel de fila. Es la alternativa al asignador por conteo cuando puede
// haber finalizaciones concurrentes (BILLING_NUMBERING=sequence).
//
// Nota: a diferencia del conteo, la secuencia avanza al FINALIZAR, no al
// exportar; una factura finalizada y nunca exportada deja un hueco en la
// numeración en lugar de arriesgar un duplicado.
//
// Esquema:
//
//	CREATE TABLE billing_sequences (
//	    day_key     DATE PRIMARY KEY,
//	    current_val INTEGER NOT NULL
//	);
type SequenceAllocator struct {
	q      Querier
	prefix string
	loc    *time.Location
	now    func() time.Time
}

// NewSequenceAllocator construye el asignador. loc define el día local; nil
// usa time.Local.
func NewSequenceAllocator(q Querier, prefix string, loc *time.Location) *SequenceAllocator {
	if prefix == "" {
		prefix = numbering.DefaultPrefix
	}
	if loc == nil {
		loc = time.Local
	}
	return &SequenceAllocator{q: q, prefix: prefix, loc: loc, now: time.Now}
}

// Allocate incrementa y devuelve la secuencia del día en una sola sentencia.
func (a *SequenceAllocator) Allocate(ctx context.Context) (string, error) {
	now := a.now().In(a.loc)
	dayKey := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)

	var seq int
	err := a.q.QueryRow(ctx, `
		INSERT INTO billing_sequences (day_key, current_val)
		VALUES ($1, 1)
		ON CONFLICT (day_key) DO UPDATE SET current_val = billing_sequences.current_val + 1
		RETURNING current_val
	`, dayKey).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("%w: secuencia del día: %v", domain.ErrAllocation, err)
	}
	return numbering.Format(a.prefix, now, seq), nil
}
