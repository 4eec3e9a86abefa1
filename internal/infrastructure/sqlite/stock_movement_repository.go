package sqlite

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del kardex sobre SQLite.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador de persistencia para movimientos de stock.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

type movementRow struct {
	ID         string `db:"id"`
	ProductID  string `db:"product_id"`
	Delta      int    `db:"delta"`
	StockAfter int    `db:"stock_after"`
	Reason     string `db:"reason"`
	Reference  string `db:"reference"`
	CreatedAt  string `db:"created_at"`
}

// Create registra un movimiento.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now()
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO stock_movements (id, product_id, delta, stock_after, reason, reference, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.ProductID, m.Delta, m.StockAfter, m.Reason, m.Reference, formatTS(m.CreatedAt),
	)
	if err != nil {
		return storeErr("insert stock movement", err)
	}
	return nil
}

// List movimientos en orden cronológico.
func (r *StockMovementRepo) List(ctx context.Context, f repository.StockMovementFilter) ([]*entity.StockMovement, error) {
	query := `SELECT id, product_id, delta, stock_after, reason, reference, created_at FROM stock_movements WHERE 1 = 1`
	var args []any
	if f.ProductID != "" {
		query += ` AND product_id = ?`
		args = append(args, f.ProductID)
	}
	if f.From != nil {
		query += ` AND created_at >= ?`
		args = append(args, formatTSPtr(f.From))
	}
	if f.To != nil {
		query += ` AND created_at < ?`
		args = append(args, formatTSPtr(f.To))
	}
	query += ` ORDER BY created_at, rowid`

	var rows []movementRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, storeErr("list stock movements", err)
	}
	list := make([]*entity.StockMovement, 0, len(rows))
	for _, row := range rows {
		list = append(list, &entity.StockMovement{
			ID: row.ID, ProductID: row.ProductID, Delta: row.Delta, StockAfter: row.StockAfter,
			Reason: row.Reason, Reference: row.Reference, CreatedAt: parseTS(row.CreatedAt),
		})
	}
	return list, nil
}
