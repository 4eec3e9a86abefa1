package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para entradas de stock.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una entrada de stock.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO purchases (id, product_id, quantity, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.ProductID, p.Quantity, p.CreatedAt,
	)
	if err != nil {
		return storeErr("insert purchase", err)
	}
	return nil
}

// List entradas unidas con el producto actual; conserva las de productos borrados.
func (r *PurchaseRepo) List(ctx context.Context, f repository.PurchaseFilter) ([]*entity.PurchaseView, error) {
	query := `
		SELECT pu.id, pu.product_id, pu.quantity, pu.created_at,
		       p.id IS NOT NULL, COALESCE(p.code, ''), COALESCE(p.name, ''), COALESCE(p.category, ''), COALESCE(p.cost, 0)
		FROM purchases pu
		LEFT JOIN products p ON p.id = pu.product_id
		WHERE 1 = 1`
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND p.category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, likePattern(f.Search))
		query += fmt.Sprintf(" AND (p.name ILIKE $%d OR p.code ILIKE $%d)", len(args), len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND pu.created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND pu.created_at < $%d", len(args))
	}
	query += ` ORDER BY pu.created_at DESC, pu.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list purchases", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseView
	for rows.Next() {
		var v entity.PurchaseView
		var cost decimal.Decimal
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Quantity, &v.CreatedAt,
			&v.ProductFound, &v.Code, &v.Name, &v.Category, &cost); err != nil {
			return nil, storeErr("scan purchase", err)
		}
		v.UnitCost = cost
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list purchases", err)
	}
	return list, nil
}
