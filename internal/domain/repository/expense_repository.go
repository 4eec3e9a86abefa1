package repository

import (
	"context"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
)

// ExpenseFilter filtros de gastos. Range con extremos vacíos no acota.
type ExpenseFilter struct {
	Range  date.Range
	Search string
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// List ordena por fecha descendente.
	List(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)
}
