package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id         TEXT PRIMARY KEY,
		code       TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL,
		cost       NUMERIC NOT NULL DEFAULT 0,
		price      NUMERIC NOT NULL DEFAULT 0,
		stock      INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             TEXT PRIMARY KEY,
		category       TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		total_amount   NUMERIC NOT NULL,
		items          JSONB NOT NULL DEFAULT '[]',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id         TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		quantity   INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_created_at ON purchases(created_at)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id          TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		amount      NUMERIC NOT NULL,
		date        DATE NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id          TEXT PRIMARY KEY,
		product_id  TEXT NOT NULL,
		delta       INTEGER NOT NULL,
		stock_after INTEGER NOT NULL,
		reason      TEXT NOT NULL,
		reference   TEXT NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements(product_id, created_at)`,
}

// Migrate crea el esquema si no existe. Es idempotente.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración postgres: %w", err)
		}
	}
	return nil
}
