package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Montos como TEXT (decimal exacto) y timestamps como TEXT en UTC con ancho fijo, para que
// la comparación de cadenas coincida con la cronológica.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id         TEXT PRIMARY KEY,
		code       TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL,
		cost       TEXT NOT NULL DEFAULT '0',
		price      TEXT NOT NULL DEFAULT '0',
		stock      INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             TEXT PRIMARY KEY,
		category       TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		total_amount   TEXT NOT NULL,
		items          TEXT NOT NULL DEFAULT '[]',
		created_at     TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_sales_created_at ON sales(created_at);`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id         TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		quantity   INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_created_at ON purchases(created_at);`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id          TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		amount      TEXT NOT NULL,
		date        TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id          TEXT PRIMARY KEY,
		product_id  TEXT NOT NULL,
		delta       INTEGER NOT NULL,
		stock_after INTEGER NOT NULL,
		reason      TEXT NOT NULL,
		reference   TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements(product_id, created_at);`,
}

// Migrate crea el esquema si no existe. Es idempotente.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migración sqlite: %w", err)
		}
	}
	return nil
}
