// Package pdf implementa la generación del Reporte de Procedencia de un
// producto trazado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto  │  ID + Estado actual          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHA: Categoría / Fabricante / Lote / Fecha de producción  │
//	│  PUNTAJE ÉTICO: valor sobre 100                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Etapa | Ubicación | Actor | Estado           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/tu-usuario/chaintrace-api/internal/application/usecase"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
)

var _ usecase.ProvenancePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 64}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ProvenancePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateProvenancePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateProvenancePDF(
	_ context.Context,
	product *entity.Product,
	events []*entity.SupplyChainEvent,
	ethicalScore float64,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Procedencia", true).
		WithAuthor(product.Manufacturer, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(productSheetRow(product))
	m.AddRows(scoreRow(ethicalScore))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de eventos del ledger
	m.AddRows(tableHeaderRow())
	for _, r := range tableEventRows(events) {
		m.AddRows(r)
	}

	// Footer de verificación
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range verificationFooterRows(product) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del producto (izq) e ID + estado actual (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fabricante: "+product.Manufacturer, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE PROCEDENCIA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(product.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Estado: "+string(product.CurrentStatus), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// productSheetRow: ficha descriptiva del producto.
func productSheetRow(product *entity.Product) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("FICHA DEL PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Categoría: %s   |   Lote: %s   |   Producción: %s",
				product.Category,
				nonEmptyPtr(product.BatchNumber, "—"),
				product.ProductionDate.Format("02/01/2006"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
			text.New(fmt.Sprintf("Ubicación actual: %s   |   Certificaciones: %d",
				product.CurrentLocation, len(product.Certifications),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// scoreRow: puntaje ético destacado.
func scoreRow(score float64) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("PUNTAJE ÉTICO: %.1f / 100", score), props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de eventos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Etapa", 3, align.Left),
		h("Ubicación", 3, align.Left),
		h("Actor", 2, align.Left),
		h("Estado", 2, align.Center),
	)
}

// tableEventRows: una fila por evento del ledger, en orden de append.
func tableEventRows(events []*entity.SupplyChainEvent) []core.Row {
	result := make([]core.Row, 0, len(events))
	for _, ev := range events {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				ev.Timestamp.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				string(ev.Stage),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				ev.Location,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				ev.Actor,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				string(ev.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}

// verificationFooterRows: código QR con el id del producto + leyenda.
func verificationFooterRows(product *entity.Product) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("VERIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	rows = append(rows, row.New(40).Add(
		col.New(4).Add(code.NewQr(product.ID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código QR para consultar\nla trazabilidad de este producto.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Historial sólo-append:\ncada evento queda registrado de forma permanente.", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 18,
				Left: 3, Color: colorPrimary,
			}),
		),
	))

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este reporte refleja el estado del producto al momento de su generación. "+
				"El puntaje ético se recalcula en cada lectura a partir del historial completo.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmptyPtr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
