package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// GroupRow ventas agrupadas por (categoría, método de pago).
type GroupRow struct {
	Category      string
	PaymentMethod string
	Transactions  int
	Revenue       decimal.Decimal
	Average       decimal.Decimal
}

// CategoryRow ingresos, costo y utilidad de una categoría.
type CategoryRow struct {
	Category     string
	Transactions int
	Revenue      decimal.Decimal
	Cost         decimal.Decimal
	Profit       decimal.Decimal
}

// Summary agregados de un conjunto de ventas.
type Summary struct {
	Groups       []GroupRow
	Categories   []CategoryRow
	Transactions int
	Revenue      decimal.Decimal
	Cost         decimal.Decimal
	Profit       decimal.Decimal
}

// Summarize agrega las ventas. categories fija qué filas de categoría se reportan (y su orden);
// serviceCost reemplaza el costo de la categoría service (gastos del mismo rango).
// Una venta sin líneas aporta cero a todos los agregados, conteo incluido.
func Summarize(sales []*entity.Sale, categories []string, serviceCost decimal.Decimal) Summary {
	byCat := make(map[string]*CategoryRow, len(categories))
	out := Summary{Revenue: decimal.Zero, Cost: decimal.Zero, Profit: decimal.Zero}
	for _, c := range categories {
		row := &CategoryRow{Category: c, Revenue: decimal.Zero, Cost: decimal.Zero}
		if c == entity.CategoryService {
			row.Cost = serviceCost
		}
		byCat[c] = row
	}

	type key struct{ cat, pm string }
	groups := map[key]*GroupRow{}
	for _, s := range sales {
		if s == nil || len(s.Items) == 0 {
			continue
		}
		row, ok := byCat[s.Category]
		if !ok {
			continue
		}
		row.Transactions++
		row.Revenue = row.Revenue.Add(s.TotalAmount)
		if s.Category != entity.CategoryService {
			row.Cost = row.Cost.Add(ItemsCost(s.Items))
		}

		k := key{s.Category, s.PaymentMethod}
		g, ok := groups[k]
		if !ok {
			g = &GroupRow{Category: s.Category, PaymentMethod: s.PaymentMethod, Revenue: decimal.Zero}
			groups[k] = g
		}
		g.Transactions++
		g.Revenue = g.Revenue.Add(s.TotalAmount)
	}

	for _, c := range categories {
		row := byCat[c]
		row.Profit = row.Revenue.Sub(row.Cost)
		out.Categories = append(out.Categories, *row)
		out.Transactions += row.Transactions
		out.Revenue = out.Revenue.Add(row.Revenue)
		out.Cost = out.Cost.Add(row.Cost)
	}
	out.Profit = out.Revenue.Sub(out.Cost)

	rank := make(map[string]int, len(categories))
	for i, c := range categories {
		rank[c] = i
	}
	for _, g := range groups {
		g.Average = g.Revenue.Div(decimal.NewFromInt(int64(g.Transactions))).Round(2)
		out.Groups = append(out.Groups, *g)
	}
	sort.Slice(out.Groups, func(i, j int) bool {
		a, b := out.Groups[i], out.Groups[j]
		if a.Category != b.Category {
			return rank[a.Category] < rank[b.Category]
		}
		return a.PaymentMethod < b.PaymentMethod
	})
	return out
}
