package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.Store = (*Store)(nil)

// Store agrupa el pool y ejecuta callbacks dentro de transacciones PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el Store con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Repositories repos atados al pool (fuera de transacción).
func (s *Store) Repositories() repository.Repositories {
	return bind(s.pool)
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(bind(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit transaction", err)
	}
	return nil
}

// Close cierra el pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func bind(q Querier) repository.Repositories {
	return repository.Repositories{
		Products:  NewProductRepository(q),
		Sales:     NewSaleRepository(q),
		Purchases: NewPurchaseRepository(q),
		Expenses:  NewExpenseRepository(q),
		Movements: NewStockMovementRepository(q),
	}
}
