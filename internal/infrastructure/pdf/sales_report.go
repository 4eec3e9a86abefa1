// Package pdf genera el reporte de ventas impreso.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda + período     │  Fecha de emisión            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Trans. | Ingresos | Costo | Utilidad     │
//	│  TOTALES: Ingresos / Costo / UTILIDAD                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Método | Trans. | Ingresos | Promedio    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Fecha | Categoría | Método | Líneas | Total        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa sales.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, report *dto.SalesReport) ([]byte, error) {
	if report == nil || report.Summary == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	money := currency.Formatter{Code: report.Currency}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Penjualan", true).
		WithAuthor(report.ShopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("RESUMEN POR CATEGORÍA"))
	m.AddRows(categoryHeaderRow())
	m.AddRows(categoryRows(report.Summary, money)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Summary, money))

	if len(report.Summary.Groups) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionRow("POR MÉTODO DE PAGO"))
		m.AddRows(groupHeaderRow())
		m.AddRows(groupRows(report.Summary.Groups, money)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionRow(fmt.Sprintf("DETALLE DE VENTAS (%d)", len(report.Sales))))
	m.AddRows(saleRows(report.Sales, money)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda y período (izq), fecha de emisión (der).
func headerRow(report *dto.SalesReport) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(report.ShopName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+report.Summary.Period, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(filterLabel(report.Summary.Filter), props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cols []column) core.Row {
	r := row.New(7)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRow(cols []column, values ...string) core.Row {
	r := row.New(6)
	for i, c := range cols {
		r.Add(col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

var categoryCols = []column{
	{"Categoría", 4, align.Left},
	{"Trans.", 1, align.Center},
	{"Ingresos", 2, align.Right},
	{"Costo", 2, align.Right},
	{"Utilidad", 3, align.Right},
}

func categoryHeaderRow() core.Row { return tableHeader(categoryCols) }

// categoryRows: una fila por categoría reportada.
func categoryRows(s *dto.SummaryResponse, money currency.Formatter) []core.Row {
	rows := make([]core.Row, 0, len(s.Categories))
	for _, c := range s.Categories {
		rows = append(rows, tableRow(categoryCols,
			c.Label,
			fmt.Sprint(c.Transactions),
			money.Format(c.Revenue),
			money.Format(c.Cost),
			money.Format(c.Profit),
		))
	}
	return rows
}

var groupCols = []column{
	{"Categoría", 4, align.Left},
	{"Método", 2, align.Left},
	{"Trans.", 1, align.Center},
	{"Ingresos", 3, align.Right},
	{"Promedio", 2, align.Right},
}

func groupHeaderRow() core.Row { return tableHeader(groupCols) }

func groupRows(groups []dto.SummaryGroupResponse, money currency.Formatter) []core.Row {
	rows := make([]core.Row, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, tableRow(groupCols,
			entity.CategoryLabel(g.Category),
			entity.PaymentLabel(g.PaymentMethod),
			fmt.Sprint(g.Transactions),
			money.Format(g.Revenue),
			money.Format(g.Average),
		))
	}
	return rows
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(s *dto.SummaryResponse, money currency.Formatter) core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(v string, right float64) core.Component {
		return text.New(v, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right, Top: 10,
		})
	}

	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label(fmt.Sprintf("Ingresos (%d):", s.Transactions)),
			text.New("Costo:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			grand("UTILIDAD:", 2),
		),
		col.New(3).Add(
			value(money.Format(s.Revenue)),
			text.New(money.Format(s.Cost), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			grand(money.Format(s.Profit), 1),
		),
	)
}

var saleCols = []column{
	{"Fecha", 2, align.Left},
	{"Categoría", 2, align.Left},
	{"Método", 1, align.Left},
	{"Líneas", 5, align.Left},
	{"Total", 2, align.Right},
}

// saleRows: una fila por venta, con sus líneas resumidas.
func saleRows(sales []dto.SaleResponse, money currency.Formatter) []core.Row {
	if len(sales) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin ventas en el período.", props.Text{Size: 8, Color: colorGray, Top: 2, Align: align.Center}),
		))}
	}
	rows := []core.Row{tableHeader(saleCols)}
	for _, s := range sales {
		rows = append(rows, tableRow(saleCols,
			s.CreatedAt.Format("02/01 15:04"),
			entity.CategoryLabel(s.Category),
			entity.PaymentLabel(s.PaymentMethod),
			itemsLabel(s.Items),
			money.Format(s.TotalAmount),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// itemsLabel "2× Pulpen, 40× Fotocopy" recortado para caber en la columna.
func itemsLabel(items []dto.SaleItemResponse) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = it.ServiceLabel
		}
		parts = append(parts, fmt.Sprintf("%d× %s", it.Quantity, name))
	}
	return truncate(strings.Join(parts, ", "), 60)
}

func filterLabel(f dto.SaleFilter) string {
	parts := []string{}
	if f.Category != "" {
		parts = append(parts, entity.CategoryLabel(f.Category))
	}
	if f.PaymentMethod != "" {
		parts = append(parts, entity.PaymentLabel(f.PaymentMethod))
	}
	if len(parts) == 0 {
		return "Todas las categorías"
	}
	return strings.Join(parts, " · ")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
