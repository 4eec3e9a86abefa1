package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, description, amount, date, created_at, updated_at`

func scanExpense(row pgx.Row) (*entity.Expense, error) {
	var e entity.Expense
	if err := row.Scan(&e.ID, &e.Description, &e.Amount, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
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
	_, err := r.q.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Description, e.Amount, e.Date, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert expense", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	e, err := scanExpense(r.q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get expense", err)
	}
	return e, nil
}

// Update reescribe descripción, monto y fecha. false si el gasto no existe.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.Expense) (bool, error) {
	e.UpdatedAt = now()
	cmd, err := r.q.Exec(ctx,
		`UPDATE expenses SET description = $2, amount = $3, date = $4, updated_at = $5 WHERE id = $1`,
		e.ID, e.Description, e.Amount, e.Date, e.UpdatedAt,
	)
	if err != nil {
		return false, storeErr("update expense", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, storeErr("delete expense", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List gastos filtrados por rango de días (inclusivo) y texto, por fecha descendente.
func (r *ExpenseRepo) List(ctx context.Context, f repository.ExpenseFilter) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE 1 = 1`
	var args []any
	if !f.Range.From.IsZero() {
		args = append(args, f.Range.From.String())
		query += fmt.Sprintf(" AND date >= $%d::date", len(args))
	}
	if !f.Range.To.IsZero() {
		args = append(args, f.Range.To.String())
		query += fmt.Sprintf(" AND date <= $%d::date", len(args))
	}
	if f.Search != "" {
		args = append(args, likePattern(f.Search))
		query += fmt.Sprintf(" AND description ILIKE $%d", len(args))
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list expenses", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, storeErr("scan expense", err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list expenses", err)
	}
	return list, nil
}
