package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/gpstudio/billing-api/internal/domain"
	"github.com/gpstudio/billing-api/internal/domain/entity"
)

// FinalizeUseCase cierra un borrador en un registro terminal: factura
// numerada o cotización sin número. No persiste nada; la escritura durable
// ocurre recién en la exportación del documento (ver ExportUseCase).
type FinalizeUseCase struct {
	session   *Session
	allocator NumberAllocator
	now       func() time.Time
}

// NewFinalizeUseCase construye el caso de uso.
func NewFinalizeUseCase(session *Session, allocator NumberAllocator) *FinalizeUseCase {
	return &FinalizeUseCase{session: session, allocator: allocator, now: time.Now}
}

// FinalizeInvoice calcula totales, asigna número y sella el registro con
// mode=invoice. El registro pasa a ser el snapshot autoritativo del borrador
// (un "Editar" posterior arranca de él) pero NO se persiste todavía.
//
// Errores: ErrPrecondition si faltan datos del cliente o no hay eventos;
// ErrAllocation si la consulta de numeración falla (el borrador queda
// intacto y se puede reintentar).
func (uc *FinalizeUseCase) FinalizeInvoice(ctx context.Context) (*entity.Invoice, error) {
	draft, ok := uc.session.Snapshot()
	if !ok {
		return nil, fmt.Errorf("%w: no hay flujo activo", domain.ErrPrecondition)
	}
	if err := checkPreconditions(draft); err != nil {
		return nil, err
	}

	// Todo se calcula antes del único paso con efecto externo (la asignación
	// del número): si Allocate falla no queda ningún estado a medias.
	subtotal, total := Totals(draft.Events, entity.ModeInvoice, draft.Client.Advance)

	id, err := uc.allocator.Allocate(ctx)
	if err != nil {
		return nil, err
	}

	record := &entity.Invoice{
		ID:        id,
		Client:    draft.Client,
		Events:    draft.Events,
		Subtotal:  subtotal,
		Total:     total,
		CreatedAt: uc.now(),
		Mode:      entity.ModeInvoice,
	}
	uc.session.adoptFinalized(record)
	return record, nil
}

// BuildQuotation sella el borrador como cotización: sin número, sin
// descuento de anticipo, nunca persistida. Mismas precondiciones que la
// factura; jamás toca el asignador de números.
func (uc *FinalizeUseCase) BuildQuotation(_ context.Context) (*entity.Invoice, error) {
	draft, ok := uc.session.Snapshot()
	if !ok {
		return nil, fmt.Errorf("%w: no hay flujo activo", domain.ErrPrecondition)
	}
	if err := checkPreconditions(draft); err != nil {
		return nil, err
	}

	subtotal, total := Totals(draft.Events, entity.ModeQuotation, draft.Client.Advance)

	record := &entity.Invoice{
		ID:        "",
		Client:    draft.Client,
		Events:    draft.Events,
		Subtotal:  subtotal,
		Total:     total,
		CreatedAt: uc.now(),
		Mode:      entity.ModeQuotation,
	}
	uc.session.adoptFinalized(record)
	return record, nil
}

func checkPreconditions(draft Draft) error {
	if draft.Client.Name == "" || draft.Client.Phone == "" {
		return fmt.Errorf("%w: faltan nombre o teléfono del cliente", domain.ErrPrecondition)
	}
	if draft.Client.EventDate == nil || draft.Client.DateIssued == nil {
		return fmt.Errorf("%w: faltan fechas del evento o de emisión", domain.ErrPrecondition)
	}
	if len(draft.Events) == 0 {
		return fmt.Errorf("%w: el borrador no tiene eventos", domain.ErrPrecondition)
	}
	return nil
}
