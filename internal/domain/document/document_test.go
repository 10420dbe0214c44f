package document_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpstudio/billing-api/internal/domain/document"
	"github.com/gpstudio/billing-api/internal/domain/entity"
)

func sampleRecord(mode entity.Mode) entity.Invoice {
	eventDate := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	issued := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	rec := entity.Invoice{
		Client: entity.ClientInfo{
			Name:       "Ravi Kumar",
			Phone:      "9876543210",
			EventDate:  &eventDate,
			DateIssued: &issued,
			Advance:    decimal.NewFromInt(2000),
		},
		Events: []entity.EventBlock{
			{
				ID:        "ev-1",
				EventType: "Wedding shoot",
				Services: []entity.ServiceLine{
					{ID: "s-1", Name: "Traditional Photo", Amount: decimal.NewFromInt(5000)},
					{ID: "s-2", Name: "Drone Shoot", Amount: decimal.NewFromInt(7000)},
				},
			},
		},
		Subtotal:  decimal.NewFromInt(12000),
		CreatedAt: time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC),
		Mode:      mode,
	}
	if mode == entity.ModeInvoice {
		rec.ID = "GP050325-003"
		rec.Total = decimal.NewFromInt(10000)
	} else {
		rec.Total = decimal.NewFromInt(12000)
	}
	return rec
}

// Renderizar dos veces el mismo registro inmutable debe dar bytes idénticos.
func TestBuild_Idempotente(t *testing.T) {
	rec := sampleRecord(entity.ModeInvoice)

	d1 := document.Build(rec)
	d2 := document.Build(rec)
	assert.Equal(t, d1, d2)

	b1, err := json.Marshal(d1)
	require.NoError(t, err)
	b2, err := json.Marshal(d2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2, "el mismo registro debe renderizar a bytes idénticos")
}

func TestBuild_Factura(t *testing.T) {
	doc := document.Build(sampleRecord(entity.ModeInvoice))

	assert.Equal(t, document.StudioName, doc.Branding)
	assert.Equal(t, document.LabelInvoice, doc.Label)
	assert.Equal(t, "GP050325-003", doc.Number)
	assert.Equal(t, "10/03/2025", doc.Client.EventDate)
	assert.Equal(t, "05/03/2025", doc.Client.DateIssued)
	assert.True(t, doc.Totals.ShowAdvance)
	assert.Equal(t, "₹2,000", doc.Totals.Advance)
	assert.Equal(t, "₹12,000", doc.Totals.Subtotal)
	assert.Equal(t, "₹10,000", doc.Totals.Total)
}

func TestBuild_Cotizacion(t *testing.T) {
	doc := document.Build(sampleRecord(entity.ModeQuotation))

	assert.Equal(t, document.LabelQuotation, doc.Label)
	assert.Empty(t, doc.Number, "la cotización no muestra número")
	assert.Empty(t, doc.Client.EventDate)
	assert.Empty(t, doc.Client.DateIssued)
	assert.False(t, doc.Totals.ShowAdvance)
	assert.Empty(t, doc.Totals.Advance)
	assert.Equal(t, "₹12,000", doc.Totals.Total)
}

// Entre factura y cotización solo cambian etiqueta, número, fechas y bloque
// de anticipo; las tablas de eventos deben ser idénticas.
func TestBuild_TablasIgualesEntreModos(t *testing.T) {
	inv := document.Build(sampleRecord(entity.ModeInvoice))
	quo := document.Build(sampleRecord(entity.ModeQuotation))

	assert.Equal(t, inv.Events, quo.Events)
	assert.Equal(t, inv.Client.Name, quo.Client.Name)
	assert.Equal(t, inv.Client.Phone, quo.Client.Phone)
}

func TestBuild_TablaPorEvento(t *testing.T) {
	doc := document.Build(sampleRecord(entity.ModeInvoice))

	require.Len(t, doc.Events, 1)
	table := doc.Events[0]
	assert.Equal(t, "Wedding shoot", table.Title)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Traditional Photo", table.Rows[0].Name)
	assert.Equal(t, "₹5,000", table.Rows[0].Amount)
	assert.Equal(t, "Drone Shoot", table.Rows[1].Name)
	assert.Equal(t, "₹7,000", table.Rows[1].Amount)
}

func TestFormatAmount_AgrupacionIndia(t *testing.T) {
	cases := map[string]string{
		"0":          "₹0",
		"500":        "₹500",
		"5000":       "₹5,000",
		"12000":      "₹12,000",
		"100000":     "₹1,00,000",
		"1234567":    "₹12,34,567",
		"1234567.50": "₹12,34,567.50",
	}
	for in, want := range cases {
		d, err := decimal.NewFromString(in)
		require.NoError(t, err)
		assert.Equal(t, want, document.FormatAmount(d), "monto %s", in)
	}
}
