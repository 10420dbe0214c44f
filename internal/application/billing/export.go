package billing

import (
	"context"
	"fmt"

	"github.com/gpstudio/billing-api/internal/domain"
	"github.com/gpstudio/billing-api/internal/domain/document"
	"github.com/gpstudio/billing-api/internal/domain/entity"
	"github.com/gpstudio/billing-api/internal/domain/repository"
)

// DocumentGenerator proyecta un Document a los bytes del artefacto
// compartible (PDF). Implementado en infrastructure/pdf con Maroto.
type DocumentGenerator interface {
	Generate(ctx context.Context, doc document.Document) ([]byte, error)
}

// ExportUseCase produce el artefacto descargable del registro finalizado y,
// solo entonces, persiste las facturas. La persistencia ocurre en la
// exportación y no en la finalización: una factura finalizada pero nunca
// exportada no queda almacenada.
type ExportUseCase struct {
	session   *Session
	repo      repository.InvoiceRepository
	generator DocumentGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(session *Session, repo repository.InvoiceRepository, generator DocumentGenerator) *ExportUseCase {
	return &ExportUseCase{session: session, repo: repo, generator: generator}
}

// ExportCurrent exporta el registro terminal del flujo activo.
//
// Orden estricto: renderizar → generar PDF → persistir (solo facturas).
// Si cualquier paso falla se devuelve ErrExport y nada queda a medias: el
// registro sigue en la sesión y el reintento repite la operación completa
// (Put es idempotente porque la clave es el número de factura).
func (uc *ExportUseCase) ExportCurrent(ctx context.Context) ([]byte, string, error) {
	record := uc.session.Finalized()
	if record == nil {
		return nil, "", fmt.Errorf("%w: no hay registro finalizado para exportar", domain.ErrPrecondition)
	}

	pdf, filename, err := uc.render(ctx, record)
	if err != nil {
		return nil, "", err
	}

	if record.Mode == entity.ModeInvoice {
		if err := uc.repo.Put(ctx, record); err != nil {
			return nil, "", fmt.Errorf("%w: persistir factura %s: %v", domain.ErrExport, record.ID, err)
		}
	}
	return pdf, filename, nil
}

// ExportByID re-exporta una factura histórica en modo solo lectura.
// Nunca re-persiste.
func (uc *ExportUseCase) ExportByID(ctx context.Context, id string) ([]byte, string, error) {
	record, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("obtener factura: %w", err)
	}
	if record == nil {
		return nil, "", domain.ErrNotFound
	}
	return uc.render(ctx, record)
}

func (uc *ExportUseCase) render(ctx context.Context, record *entity.Invoice) ([]byte, string, error) {
	doc := document.Build(*record)
	pdf, err := uc.generator.Generate(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: generar PDF: %v", domain.ErrExport, err)
	}
	filename := "quotation.pdf"
	if record.Mode == entity.ModeInvoice {
		filename = fmt.Sprintf("invoice_%s.pdf", record.ID)
	}
	return pdf, filename, nil
}
