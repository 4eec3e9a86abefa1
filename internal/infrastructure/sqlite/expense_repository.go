package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre SQLite.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, description, amount, date, created_at, updated_at`

type expenseRow struct {
	ID          string          `db:"id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        date.Date       `db:"date"`
	CreatedAt   string          `db:"created_at"`
	UpdatedAt   string          `db:"updated_at"`
}

func (r expenseRow) toEntity() *entity.Expense {
	return &entity.Expense{
		ID: r.ID, Description: r.Description, Amount: r.Amount, Date: r.Date,
		CreatedAt: parseTS(r.CreatedAt), UpdatedAt: parseTS(r.UpdatedAt),
	}
}

// Create persiste un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now()
	}
	e.UpdatedAt = e.CreatedAt
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Description, e.Amount, e.Date, formatTS(e.CreatedAt), formatTS(e.UpdatedAt),
	)
	if err != nil {
		return storeErr("insert expense", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var row expenseRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get expense", err)
	}
	return row.toEntity(), nil
}

// Update reescribe descripción, monto y fecha. false si el gasto no existe.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) (bool, error) {
	e.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, date = ?, updated_at = ? WHERE id = ?`,
		e.Description, e.Amount, e.Date, formatTS(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return false, storeErr("update expense", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, storeErr("delete expense", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// List gastos filtrados por rango de días (inclusivo) y texto, por fecha descendente.
func (r *ExpenseRepo) List(ctx context.Context, f repository.ExpenseFilter) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1 = 1`
	var args []any
	if !f.Range.From.IsZero() {
		query += ` AND date >= ?`
		args = append(args, f.Range.From.String())
	}
	if !f.Range.To.IsZero() {
		query += ` AND date <= ?`
		args = append(args, f.Range.To.String())
	}
	if f.Search != "" {
		query += ` AND lower(description) LIKE ? ESCAPE '\'`
		args = append(args, likePattern(f.Search))
	}
	query += ` ORDER BY date DESC, created_at DESC`

	var rows []expenseRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, storeErr("list expenses", err)
	}
	list := make([]*entity.Expense, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}
