package numbering_test

import (
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpstudio/billing-api/internal/domain/numbering"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores exactos del formato. Si alguien toca el padding, el orden DDMMYY o
// el separador, estos tests fallan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormat_VectorExacto(t *testing.T) {
	// 7.ª factura del 5 de marzo de 2025
	d := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "GP050325-007", numbering.Format("GP", d, 7))
}

func TestFormat_PaddingDiaMesAnio(t *testing.T) {
	d := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "GP010126-001", numbering.Format("GP", d, 1))

	d = time.Date(2031, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "GP311231-042", numbering.Format("GP", d, 42))
}

func TestFormat_SecuenciaMayorATresDigitos(t *testing.T) {
	// La secuencia no se trunca si supera 999.
	d := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "GP050325-1000", numbering.Format("GP", d, 1000))
}

func TestParse_RoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		for _, seq := range []int{1, 9, 99, 123, 999} {
			id := numbering.Format("GP", d, seq)
			n, err := numbering.Parse(id)
			require.NoError(t, err, "Parse debe aceptar %q", id)
			assert.Equal(t, "GP", n.Prefix)
			assert.Equal(t, d.Day(), n.Day)
			assert.Equal(t, d.Month(), n.Month)
			assert.Equal(t, d.Year()%100, n.Year)
			assert.Equal(t, seq, n.Seq)
		}
	}
}

// Los identificadores de un mismo día deben ordenarse igual que su secuencia.
func TestFormat_MismoDiaEstrictamenteCreciente(t *testing.T) {
	d := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
	var ids []string
	for seq := 1; seq <= 25; seq++ {
		ids = append(ids, numbering.Format("GP", d, seq))
	}
	assert.True(t, sort.StringsAreSorted(ids), "los números del día deben crecer con la secuencia")
	for i := 1; i < len(ids); i++ {
		assert.NotEqual(t, ids[i-1], ids[i])
	}
}

func TestParse_Invalidos(t *testing.T) {
	cases := []string{
		"",
		"GP-001",
		"gp050325-007", // prefijo en minúsculas
		"GP05032025-007",
		"GP050325007",
		"GP450325-007", // día 45
		"GP051325-007", // mes 13
		"GP050325-07",  // secuencia de 2 dígitos
	}
	for _, s := range cases {
		t.Run(fmt.Sprintf("caso %q", s), func(t *testing.T) {
			_, err := numbering.Parse(s)
			assert.Error(t, err, "Parse debe rechazar %q", s)
		})
	}
}
