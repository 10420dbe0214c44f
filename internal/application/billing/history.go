package billing

import (
	"context"
	"fmt"

	"github.com/gpstudio/billing-api/internal/domain"
	"github.com/gpstudio/billing-api/internal/domain/entity"
	"github.com/gpstudio/billing-api/internal/domain/repository"
)

// HistoryUseCase consulta facturas ya persistidas (pantalla de historial y
// reapertura en solo lectura).
type HistoryUseCase struct {
	repo repository.InvoiceRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(repo repository.InvoiceRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// List devuelve el historial, más reciente primero, filtrado por nombre de
// cliente o número de factura.
func (uc *HistoryUseCase) List(ctx context.Context, search string) ([]*entity.Invoice, error) {
	list, err := uc.repo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	return list, nil
}

// Get recupera una factura por su número. Un id inexistente se reporta como
// ErrNotFound, nunca como corrupción.
func (uc *HistoryUseCase) Get(ctx context.Context, id string) (*entity.Invoice, error) {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}
