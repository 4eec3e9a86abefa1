package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/application/usecase"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/ledger"
)

// Summary ingresos, costo y utilidad del período, por categoría y por (categoría, método de pago).
// El costo de servicios es el total de gastos del mismo rango de días.
func (uc *SaleUseCase) Summary(ctx context.Context, f dto.SaleFilter) (*dto.SummaryResponse, error) {
	out, _, err := uc.summarize(ctx, f)
	return out, err
}

// Report resumen más el detalle de ventas del período (para reportes impresos).
func (uc *SaleUseCase) Report(ctx context.Context, f dto.SaleFilter) (*dto.SummaryResponse, []dto.SaleResponse, error) {
	out, list, err := uc.summarize(ctx, f)
	if err != nil {
		return nil, nil, err
	}
	sales := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		sales = append(sales, *toSaleResponse(s, uc.loc))
	}
	return out, sales, nil
}

func (uc *SaleUseCase) summarize(ctx context.Context, f dto.SaleFilter) (*dto.SummaryResponse, []*entity.Sale, error) {
	filter, err := uc.repoFilter(f)
	if err != nil {
		return nil, nil, err
	}
	rng, err := usecase.ParseDateRange(f.DateFrom, f.DateTo)
	if err != nil {
		return nil, nil, err
	}
	list, err := uc.store.Repositories().Sales.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	categories := entity.SaleCategories
	if f.Category != "" {
		categories = []string{f.Category}
	}
	expenses := decimal.Zero
	for _, c := range categories {
		if c == entity.CategoryService {
			if expenses, err = uc.expenses.Total(ctx, rng); err != nil {
				return nil, nil, err
			}
		}
	}

	s := ledger.Summarize(list, categories, expenses)
	out := &dto.SummaryResponse{
		Filter:       f,
		Period:       rng.String(),
		Groups:       make([]dto.SummaryGroupResponse, 0, len(s.Groups)),
		Categories:   make([]dto.SummaryCategoryResponse, 0, len(s.Categories)),
		Transactions: s.Transactions,
		Revenue:      s.Revenue,
		Cost:         s.Cost,
		Profit:       s.Profit,
		Expenses:     expenses,
	}
	for _, g := range s.Groups {
		out.Groups = append(out.Groups, dto.SummaryGroupResponse{
			Category:      g.Category,
			PaymentMethod: g.PaymentMethod,
			Transactions:  g.Transactions,
			Revenue:       g.Revenue,
			Average:       g.Average,
		})
	}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, dto.SummaryCategoryResponse{
			Category:     c.Category,
			Label:        entity.CategoryLabel(c.Category),
			Transactions: c.Transactions,
			Revenue:      c.Revenue,
			Cost:         c.Cost,
			Profit:       c.Profit,
		})
	}
	return out, list, nil
}
