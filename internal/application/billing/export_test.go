package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpstudio/billing-api/internal/domain"
)

func TestExportCurrent_FacturaPersisteAlExportar(t *testing.T) {
	store := newFakeStore()
	s := readySession(t)
	rec, err := finalizer(s, store).FinalizeInvoice(context.Background())
	require.NoError(t, err)
	require.Zero(t, store.putCalls)

	gen := &fakeGenerator{}
	pdf, filename, err := NewExportUseCase(s, store, gen).ExportCurrent(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, pdf)
	assert.Equal(t, "invoice_GP050325-001.pdf", filename)
	assert.Equal(t, 1, store.putCalls, "la factura se persiste exactamente una vez, al exportar")
	stored, _ := store.GetByID(context.Background(), rec.ID)
	require.NotNil(t, stored)
	assert.Equal(t, rec.ID, stored.ID)
}

func TestExportCurrent_CotizacionNuncaSePersiste(t *testing.T) {
	store := newFakeStore()
	s := readySession(t)
	_, err := finalizer(s, store).BuildQuotation(context.Background())
	require.NoError(t, err)

	pdf, filename, err := NewExportUseCase(s, store, &fakeGenerator{}).ExportCurrent(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, pdf)
	assert.Equal(t, "quotation.pdf", filename)
	assert.Zero(t, store.putCalls, "las cotizaciones jamás llegan a Put")
}

func TestExportCurrent_SinRegistroFinalizado(t *testing.T) {
	s := NewSession()
	s.Start()
	_, _, err := NewExportUseCase(s, newFakeStore(), &fakeGenerator{}).ExportCurrent(context.Background())
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}

// Si el PDF falla, no hay escritura en el almacén y el reintento completo
// funciona sin re-finalizar.
func TestExportCurrent_FalloDePDFNoEscribe(t *testing.T) {
	store := newFakeStore()
	s := readySession(t)
	_, err := finalizer(s, store).FinalizeInvoice(context.Background())
	require.NoError(t, err)

	gen := &fakeGenerator{err: errors.New("sin memoria")}
	uc := NewExportUseCase(s, store, gen)

	_, _, err = uc.ExportCurrent(context.Background())
	assert.ErrorIs(t, err, domain.ErrExport)
	assert.Zero(t, store.putCalls, "nada se persiste si la generación falla")

	// Reintento tras recuperarse el generador.
	gen.err = nil
	_, filename, err := uc.ExportCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "invoice_GP050325-001.pdf", filename)
	assert.Equal(t, 1, store.putCalls)
}

func TestExportCurrent_FalloDePersistencia(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("conexión perdida")
	s := readySession(t)
	_, err := finalizer(s, store).FinalizeInvoice(context.Background())
	require.NoError(t, err)

	_, _, err = NewExportUseCase(s, store, &fakeGenerator{}).ExportCurrent(context.Background())
	assert.ErrorIs(t, err, domain.ErrExport)
	assert.NotNil(t, s.Finalized(), "el registro sigue en la sesión para reintentar")
}

func TestExportByID_Historica(t *testing.T) {
	store := newFakeStore()
	s := readySession(t)
	_, err := finalizer(s, store).FinalizeInvoice(context.Background())
	require.NoError(t, err)
	uc := NewExportUseCase(s, store, &fakeGenerator{})
	_, _, err = uc.ExportCurrent(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, store.putCalls)

	pdf, filename, err := uc.ExportByID(context.Background(), "GP050325-001")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "invoice_GP050325-001.pdf", filename)
	assert.Equal(t, 1, store.putCalls, "la re-exportación histórica nunca re-persiste")
}

func TestExportByID_NoExiste(t *testing.T) {
	uc := NewExportUseCase(NewSession(), newFakeStore(), &fakeGenerator{})
	_, _, err := uc.ExportByID(context.Background(), "GP010101-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
