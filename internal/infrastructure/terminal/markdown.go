// Package terminal presenta reportes de ventas en la terminal (markdown renderizado con glamour).
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/pkg/currency"
)

// SummaryMarkdown arma el resumen como documento markdown. withSales agrega el detalle de ventas.
func SummaryMarkdown(report *dto.SalesReport, withSales bool) string {
	money := currency.Formatter{Code: report.Currency}
	s := report.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", report.ShopName)
	fmt.Fprintf(&b, "Período: **%s**", s.Period)
	if s.Filter.Category != "" {
		fmt.Fprintf(&b, " · %s", entity.CategoryLabel(s.Filter.Category))
	}
	if s.Filter.PaymentMethod != "" {
		fmt.Fprintf(&b, " · %s", entity.PaymentLabel(s.Filter.PaymentMethod))
	}
	b.WriteString("\n\n## Por categoría\n\n")

	table(&b, []string{"Categoría", "Trans.", "Ingresos", "Costo", "Utilidad"}, "|:--|--:|--:|--:|--:|")
	for _, c := range s.Categories {
		row(&b, c.Label, fmt.Sprint(c.Transactions), money.Format(c.Revenue), money.Format(c.Cost), money.Format(c.Profit))
	}
	row(&b, "**Total**", fmt.Sprintf("**%d**", s.Transactions),
		"**"+money.Format(s.Revenue)+"**", "**"+money.Format(s.Cost)+"**", "**"+money.Format(s.Profit)+"**")

	if len(s.Groups) > 0 {
		b.WriteString("\n## Por método de pago\n\n")
		table(&b, []string{"Categoría", "Método", "Trans.", "Ingresos", "Promedio"}, "|:--|:--|--:|--:|--:|")
		for _, g := range s.Groups {
			row(&b, entity.CategoryLabel(g.Category), entity.PaymentLabel(g.PaymentMethod),
				fmt.Sprint(g.Transactions), money.Format(g.Revenue), money.Format(g.Average))
		}
	}
	if s.Expenses.IsPositive() {
		fmt.Fprintf(&b, "\nGastos del período (costo de servicios): %s\n", money.Format(s.Expenses))
	}

	if withSales {
		b.WriteString("\n## Ventas\n\n")
		if len(report.Sales) == 0 {
			b.WriteString("_Sin ventas en el período._\n")
		} else {
			table(&b, []string{"Fecha", "Categoría", "Método", "Líneas", "Total"}, "|:--|:--|:--|:--|--:|")
			for _, sale := range report.Sales {
				row(&b, sale.CreatedAt.Format("2006-01-02 15:04"), entity.CategoryLabel(sale.Category),
					entity.PaymentLabel(sale.PaymentMethod), lines(sale.Items), money.Format(sale.TotalAmount))
			}
		}
	}
	return b.String()
}

// Print renderiza el markdown en w. style es un estilo estándar de glamour (dark, light, notty, ascii).
func Print(w io.Writer, md, style string, width int) error {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("terminal: crear renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("terminal: renderizar: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func table(b *strings.Builder, header []string, sep string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString(sep + "\n")
}

func row(b *strings.Builder, cells ...string) {
	for i, c := range cells {
		cells[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func lines(items []dto.SaleItemResponse) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = it.ServiceLabel
		}
		parts = append(parts, fmt.Sprintf("%d× %s", it.Quantity, name))
	}
	return strings.Join(parts, ", ")
}
