package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
)

// PurchaseUseCase consultas sobre entradas de stock. Las entradas solo se crean vía ajustes positivos.
type PurchaseUseCase struct {
	repos repository.Repositories
	loc   *time.Location
}

// NewPurchaseUseCase construye el caso de uso. loc define a qué día pertenece cada entrada.
func NewPurchaseUseCase(store repository.Store, loc *time.Location) *PurchaseUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &PurchaseUseCase{repos: store.Repositories(), loc: loc}
}

// List entradas unidas con el producto actual, de la más reciente a la más antigua.
func (uc *PurchaseUseCase) List(ctx context.Context, f dto.PurchaseFilter) ([]dto.PurchaseResponse, error) {
	list, err := uc.list(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, v := range list {
		items = append(items, dto.PurchaseResponse{
			ID:           v.ID,
			ProductID:    v.ProductID,
			ProductFound: v.ProductFound,
			Code:         v.Code,
			Name:         v.Name,
			Category:     v.Category,
			Quantity:     v.Quantity,
			UnitCost:     v.UnitCost,
			Amount:       v.Amount(),
			CreatedAt:    v.CreatedAt.In(uc.loc),
		})
	}
	return items, nil
}

// Summary total valorizado al costo unitario actual (Σ cantidad × costo), cantidad total y número de entradas.
func (uc *PurchaseUseCase) Summary(ctx context.Context, f dto.PurchaseFilter) (*dto.PurchaseSummaryResponse, error) {
	list, err := uc.list(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseSummaryResponse{TotalAmount: decimal.Zero}
	for _, v := range list {
		out.TotalAmount = out.TotalAmount.Add(v.Amount())
		out.TotalQuantity += v.Quantity
		out.Count++
	}
	return out, nil
}

func (uc *PurchaseUseCase) list(ctx context.Context, f dto.PurchaseFilter) ([]*entity.PurchaseView, error) {
	if f.Category != "" && !entity.IsProductCategory(f.Category) {
		return nil, domain.Invalid("category", "categoría de producto desconocida")
	}
	rng, err := ParseDateRange(f.DateFrom, f.DateTo)
	if err != nil {
		return nil, err
	}
	from, to := rng.Bounds(uc.loc)
	return uc.repos.Purchases.List(ctx, repository.PurchaseFilter{
		Category: f.Category,
		Search:   strings.TrimSpace(f.Search),
		From:     from,
		To:       to,
	})
}

// ParseDateRange valida un filtro de días (YYYY-MM-DD, vacío = sin límite) y lo traduce a ValidationError.
func ParseDateRange(from, to string) (date.Range, error) {
	var rng date.Range
	var err error
	if s := strings.TrimSpace(from); s != "" {
		if rng.From, err = date.Parse(s); err != nil {
			return date.Range{}, domain.Invalid("date_from", err.Error())
		}
	}
	if s := strings.TrimSpace(to); s != "" {
		if rng.To, err = date.Parse(s); err != nil {
			return date.Range{}, domain.Invalid("date_to", err.Error())
		}
	}
	if err := rng.Validate(); err != nil {
		return date.Range{}, domain.Invalid("date_to", err.Error())
	}
	return rng, nil
}
