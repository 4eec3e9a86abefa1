// Package sqlite implementa los repositorios sobre SQLite (driver puro Go modernc.org/sqlite) con sqlx.
// Es el almacén por defecto: un solo puesto de caja, un solo archivo.
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

// MemoryPath abre una base en memoria (tests y demos).
const MemoryPath = ":memory:"

// Querier lo que necesitan los repos: *sqlx.DB o *sqlx.Tx.
type Querier interface {
	sqlx.ExtContext
}

// Open abre (o crea) la base y aplica las migraciones.
// Una sola conexión: SQLite serializa las escrituras y así una base en memoria no se pierde entre conexiones.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return MemoryPath
	}
	if strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

var _ repository.Store = (*Store)(nil)

// Store agrupa la conexión y expone repos y transacciones.
type Store struct {
	db *sqlx.DB
}

// NewStore construye el Store sobre una conexión ya migrada.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Repositories repos atados a la conexión (fuera de transacción).
func (s *Store) Repositories() repository.Repositories {
	return bind(s.db)
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(bind(tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storeErr("commit transaction", err)
	}
	return nil
}

// Close cierra la conexión.
func (s *Store) Close() error {
	return s.db.Close()
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
