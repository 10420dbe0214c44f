// Package pdf implementa la representación imprimible de facturas y
// cotizaciones del estudio usando Maroto v2. Recorre el árbol Document
// sección por sección; nunca consulta el almacén ni muta el registro.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: GP STUDIO            │  INVOICE/QUOTATION + N°      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre / teléfono / fechas (solo factura)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada evento: título + tabla Servicio | Monto            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Advance (solo factura) / TOTAL          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gpstudio/billing-api/internal/application/billing"
	"github.com/gpstudio/billing-api/internal/domain/document"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 70, Blue: 20} // marrón dorado del estudio
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.DocumentGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator implementa billing.DocumentGenerator usando Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator construye el generador.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// Generate produce los bytes del PDF a partir del Document.
func (g *MarotoGenerator) Generate(_ context.Context, d document.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(d.Label+" "+d.Number, true).
		WithAuthor(d.Branding, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(d.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, table := range d.Events {
		m.AddRows(eventTitleRow(table.Title))
		m.AddRows(serviceHeaderRow())
		for _, r := range serviceRows(table.Rows) {
			m.AddRows(r)
		}
		m.AddRows(row.New(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(d.Totals)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca del estudio (izq) y etiqueta + número (der).
// El número solo existe en facturas; en cotizaciones la columna queda con la
// etiqueta sola.
func headerRow(d document.Document) core.Row {
	right := []core.Component{
		text.New(d.Label, props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Right,
			Color: colorPrimary, Top: 2,
		}),
	}
	if d.Number != "" {
		right = append(right, text.New(d.Number, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 10,
		}))
	}
	return row.New(18).Add(
		col.New(6).Add(
			text.New(d.Branding, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 2,
			}),
			text.New("Photography & Films", props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
		col.New(6).Add(right...),
	)
}

// clientRow: datos del cliente; las fechas llegan vacías en cotizaciones y
// simplemente no se muestran.
func clientRow(c document.ClientBlock) core.Row {
	components := []core.Component{
		text.New("CLIENT", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(c.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		text.New("Phone: "+c.Phone, props.Text{Size: 8, Top: 12, Color: colorGray}),
	}
	height := float64(18)
	if c.EventDate != "" || c.DateIssued != "" {
		components = append(components, text.New(
			fmt.Sprintf("Event date: %s   |   Issued: %s", c.EventDate, c.DateIssued),
			props.Text{Size: 8, Top: 17, Color: colorGray},
		))
		height = 23
	}
	return row.New(height).Add(col.New(12).Add(components...))
}

// eventTitleRow: título del bloque de evento.
func eventTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

// serviceHeaderRow: cabecera de la tabla de servicios.
func serviceHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New("Service", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1, Left: 1,
		})),
		col.New(4).Add(text.New("Amount", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// serviceRows: una fila por línea de servicio, en el orden del registro.
func serviceRows(rows []document.ServiceRow) []core.Row {
	out := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, row.New(6).Add(
			col.New(8).Add(text.New(r.Name, props.Text{Size: 9, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.Amount, props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return out
}

// totalsRows: subtotal, anticipo (solo factura) y total destacado.
func totalsRows(t document.TotalsBlock) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: 1})
	}

	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(label("Subtotal:")),
			col.New(4).Add(value(t.Subtotal)),
		),
	}
	if t.ShowAdvance {
		rows = append(rows, row.New(6).Add(
			col.New(8).Add(label("Advance paid:")),
			col.New(4).Add(value(t.Advance)),
		))
	}
	rows = append(rows, row.New(9).Add(
		col.New(8).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(4).Add(text.New(t.Total, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	))
	return rows
}
