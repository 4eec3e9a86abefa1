package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL. Las líneas van en una columna JSONB.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, category, payment_method, total_amount, items, created_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var blob []byte
	if err := row.Scan(&s.ID, &s.Category, &s.PaymentMethod, &s.TotalAmount, &blob, &s.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(blob, &s.Items); err != nil {
		return nil, fmt.Errorf("decode sale %s items: %w", s.ID, err)
	}
	return &s, nil
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
	_, err = r.q.Exec(ctx, `
		INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
		s.ID, s.Category, s.PaymentMethod, s.TotalAmount, string(blob), s.CreatedAt,
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
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get sale", err)
	}
	return s, nil
}

// List lista ventas filtradas, de la más reciente a la más antigua.
func (r *SaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1 = 1`
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.PaymentMethod != "" {
		args = append(args, f.PaymentMethod)
		query += fmt.Sprintf(" AND payment_method = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list sales", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, storeErr("scan sale", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list sales", err)
	}
	return list, nil
}

// Delete elimina una venta. No restaura stock.
func (r *SaleRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return false, storeErr("delete sale", err)
	}
	return cmd.RowsAffected() > 0, nil
}
