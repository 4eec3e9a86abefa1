package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre SQLite. Las líneas se guardan como JSON.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, category, payment_method, total_amount, items, created_at`

type saleRow struct {
	ID            string          `db:"id"`
	Category      string          `db:"category"`
	PaymentMethod string          `db:"payment_method"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Items         string          `db:"items"`
	CreatedAt     string          `db:"created_at"`
}

func (r saleRow) toEntity() (*entity.Sale, error) {
	s := &entity.Sale{
		ID: r.ID, Category: r.Category, PaymentMethod: r.PaymentMethod,
		TotalAmount: r.TotalAmount, CreatedAt: parseTS(r.CreatedAt),
	}
	if err := json.Unmarshal([]byte(r.Items), &s.Items); err != nil {
		return nil, fmt.Errorf("decode sale %s items: %w", r.ID, err)
	}
	return s, nil
}

// Create persiste una venta con sus líneas.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now()
	}
	items := s.Items
	if items == nil {
		items = []entity.SaleItem{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode sale items: %w", err)
	}
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO sales (`+saleColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Category, s.PaymentMethod, s.TotalAmount, string(blob), formatTS(s.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert sale", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var row saleRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+saleColumns+` FROM sales WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get sale", err)
	}
	return row.toEntity()
}

// List lista ventas filtradas, de la más reciente a la más antigua.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1 = 1`
	var args []any
	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.PaymentMethod != "" {
		query += ` AND payment_method = ?`
		args = append(args, f.PaymentMethod)
	}
	if f.From != nil {
		query += ` AND created_at >= ?`
		args = append(args, formatTSPtr(f.From))
	}
	if f.To != nil {
		query += ` AND created_at < ?`
		args = append(args, formatTSPtr(f.To))
	}
	query += ` ORDER BY created_at DESC, id`

	var rows []saleRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, storeErr("list sales", err)
	}
	list := make([]*entity.Sale, 0, len(rows))
	for _, row := range rows {
		s, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// Delete elimina una venta. No restaura stock.
func (r *SaleRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM sales WHERE id = ?`, id)
	if err != nil {
		return false, storeErr("delete sale", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
