package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre SQLite.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para entradas de stock.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

type purchaseRow struct {
	ID        string          `db:"id"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	CreatedAt string          `db:"created_at"`
	Found     bool            `db:"found"`
	Code      sql.NullString  `db:"code"`
	Name      sql.NullString  `db:"name"`
	Category  sql.NullString  `db:"category"`
	Cost      sql.NullString  `db:"cost"`
}

// Create persiste una entrada de stock.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO purchases (id, product_id, quantity, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.ProductID, p.Quantity, formatTS(p.CreatedAt),
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
		       p.id IS NOT NULL AS found, p.code, p.name, p.category, p.cost
		FROM purchases pu
		LEFT JOIN products p ON p.id = pu.product_id
		WHERE 1 = 1`
	var args []any
	if f.Category != "" {
		query += ` AND p.category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		like := likePattern(f.Search)
		query += ` AND (lower(p.name) LIKE ? ESCAPE '\' OR lower(p.code) LIKE ? ESCAPE '\')`
		args = append(args, like, like)
	}
	if f.From != nil {
		query += ` AND pu.created_at >= ?`
		args = append(args, formatTSPtr(f.From))
	}
	if f.To != nil {
		query += ` AND pu.created_at < ?`
		args = append(args, formatTSPtr(f.To))
	}
	query += ` ORDER BY pu.created_at DESC, pu.id`

	var rows []purchaseRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, storeErr("list purchases", err)
	}
	list := make([]*entity.PurchaseView, 0, len(rows))
	for _, row := range rows {
		v := &entity.PurchaseView{
			Purchase: entity.Purchase{
				ID: row.ID, ProductID: row.ProductID, Quantity: row.Quantity, CreatedAt: parseTS(row.CreatedAt),
			},
			ProductFound: row.Found,
			Code:         row.Code.String,
			Name:         row.Name.String,
			Category:     row.Category.String,
			UnitCost:     decimal.Zero,
		}
		if row.Cost.Valid {
			if c, err := decimal.NewFromString(row.Cost.String); err == nil {
				v.UnitCost = c
			}
		}
		list = append(list, v)
	}
	return list, nil
}
