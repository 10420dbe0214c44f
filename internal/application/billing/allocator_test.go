package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El asignador por conteo consulta desde la medianoche local y devuelve
// conteo+1 formateado.
func TestCountAllocator_ConteoMasUno(t *testing.T) {
	store := newFakeStore()
	seedInvoice(store, "GP050325-001", testNow.Add(-3*time.Hour))
	seedInvoice(store, "GP050325-002", testNow.Add(-1*time.Hour))

	alloc := NewCountAllocator(store, "GP", time.UTC)
	alloc.now = fixedClock

	id, err := alloc.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GP050325-003", id)
}

// Las facturas de ayer quedan fuera: la secuencia arranca de nuevo cada día.
func TestCountAllocator_ReinicioDiario(t *testing.T) {
	store := newFakeStore()
	seedInvoice(store, "GP040325-001", testNow.Add(-30*time.Hour))
	seedInvoice(store, "GP040325-002", testNow.Add(-28*time.Hour))

	alloc := NewCountAllocator(store, "GP", time.UTC)
	alloc.now = fixedClock

	id, err := alloc.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GP050325-001", id)
}

// La medianoche se calcula en la zona configurada, no en UTC.
func TestCountAllocator_MedianocheEnZonaLocal(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 20:00 UTC del 4 de marzo ya es 01:30 del 5 de marzo en Kolkata.
	lateUTC := time.Date(2025, time.March, 4, 20, 0, 0, 0, time.UTC)

	alloc := NewCountAllocator(newFakeStore(), "GP", kolkata)
	alloc.now = func() time.Time { return lateUTC }

	id, err := alloc.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GP050325-001", id, "la fecha del número sigue el día local del estudio")
}

func TestCountAllocator_PrefijoPorDefecto(t *testing.T) {
	alloc := NewCountAllocator(newFakeStore(), "", time.UTC)
	alloc.now = fixedClock

	id, err := alloc.Allocate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GP050325-001", id)
}
