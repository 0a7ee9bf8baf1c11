// Package pdf genera el documento imprimible de la cotización con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  COTIZACIÓN N° + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + DNI + Dirección + Teléfono               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Descripción | Cant. | P.Unit | Parcial     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL (S/)                                                 │
//	│  Observaciones + nota al pie                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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
	"github.com/shopspring/decimal"

	"github.com/dkolor/cotizador-api/internal/domain/entity"
	"github.com/dkolor/cotizador-api/pkg/moneyfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// QuotePDFGenerator implementa usecase.QuotePDFGenerator usando Maroto v2.
type QuotePDFGenerator struct {
	businessName string
	footnote     string
}

// NewQuotePDFGenerator construye el generador con los datos del negocio.
func NewQuotePDFGenerator(businessName, footnote string) *QuotePDFGenerator {
	return &QuotePDFGenerator{businessName: businessName, footnote: footnote}
}

// Generate genera el PDF de la cotización y devuelve sus bytes. El cliente
// puede ser nil cuando la cotización no tiene uno seleccionado.
func (g *QuotePDFGenerator) Generate(
	d *entity.Draft,
	client *entity.Client,
	total decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización "+d.Number, true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.businessName, d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(d.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total, len(d.Items)))

	for _, r := range notesRows(d.Notes, g.footnote) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y número + fecha (der).
func headerRow(businessName string, d *entity.Draft) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Cotización de productos", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(d.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+d.Date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos del cliente seleccionado, o leyenda cuando no hay.
func clientRow(client *entity.Client) core.Row {
	if client == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Sin cliente seleccionado", props.Text{
				Size: 9, Top: 6, Color: colorGray,
			}),
		))
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Cliente, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Código: %s   |   DNI: %s   |   Tel: %s   |   Dirección: %s",
				client.Codigo,
				nonEmpty(client.DNI, "—"),
				nonEmpty(firstNonEmpty(client.Celular, client.Telefono), "—"),
				nonEmpty(client.Direccion, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Descripción", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio (S/)", 2, align.Right),
		h("Parcial (S/)", 2, align.Right),
	)
}

// tableItemRows: una fila por ítem de la cotización.
func tableItemRows(items []*entity.QuoteLine) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Codigo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				it.Descripcion,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Qty),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				moneyfmt.Plain(it.Price.Confirmed()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				moneyfmt.Plain(it.Subtotal()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: conteo de ítems (izq) y total en soles (der).
func totalRow(total decimal.Decimal, itemCount int) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("N° de ítems: %d", itemCount), props.Text{
				Size: 8, Top: 4, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 2,
			}),
		),
		col.New(2).Add(
			text.New(moneyfmt.Soles(total), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// notesRows: observaciones de la cotización y nota al pie del negocio.
func notesRows(notes, footnote string) []core.Row {
	var rows []core.Row
	if notes != "" {
		rows = append(rows,
			row.New(6).Add(col.New(12).Add(
				text.New("Observaciones:", props.Text{
					Style: fontstyle.Bold, Size: 8, Top: 2,
				}),
			)),
			row.New(8).Add(col.New(12).Add(
				text.New(notes, props.Text{Size: 8, Top: 1, Color: colorGray}),
			)),
		)
	}
	if footnote != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(footnote, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
