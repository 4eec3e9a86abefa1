package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite (usable con db o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, category, cost, price, stock, created_at, updated_at`

type productRow struct {
	ID        string          `db:"id"`
	Code      string          `db:"code"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Cost      decimal.Decimal `db:"cost"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	CreatedAt string          `db:"created_at"`
	UpdatedAt string          `db:"updated_at"`
}

func (r productRow) toEntity() *entity.Product {
	return &entity.Product{
		ID: r.ID, Code: r.Code, Name: r.Name, Category: r.Category,
		Cost: r.Cost, Price: r.Price, Stock: r.Stock,
		CreatedAt: parseTS(r.CreatedAt), UpdatedAt: parseTS(r.UpdatedAt),
	}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Code, p.Name, p.Category, p.Cost, p.Price, p.Stock, formatTS(p.CreatedAt), formatTS(p.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var row productRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get product", err)
	}
	return row.toEntity(), nil
}

// GetForUpdate equivale a GetByID: con una sola conexión la transacción en curso ya excluye a los demás escritores.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// Update actualiza los datos descriptivos del producto. El stock se maneja vía IncrementStock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	p.UpdatedAt = now()
	res, err := r.q.ExecContext(ctx, `
		UPDATE products SET code = ?, name = ?, category = ?, cost = ?, price = ?, updated_at = ?
		WHERE id = ?`,
		p.Code, p.Name, p.Category, p.Cost, p.Price, formatTS(p.UpdatedAt), p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return storeErr("update product", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. No toca ventas ni entradas que lo referencian.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return false, storeErr("delete product", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// List lista productos filtrados, ordenados por nombre.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1 = 1`
	var args []any
	if f.Category != "" {
		query += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.Search != "" {
		like := likePattern(f.Search)
		query += ` AND (lower(name) LIKE ? ESCAPE '\' OR lower(code) LIKE ? ESCAPE '\')`
		args = append(args, like, like)
	}
	query += ` ORDER BY name COLLATE NOCASE, code`

	var rows []productRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, storeErr("list products", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		list = append(list, row.toEntity())
	}
	return list, nil
}

// CodesWithPrefix códigos existentes con el prefijo dado.
func (r *ProductRepo) CodesWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var codes []string
	err := sqlx.SelectContext(ctx, r.q, &codes,
		`SELECT code FROM products WHERE substr(code, 1, ?) = ?`, len(prefix)+1, prefix+"-")
	if err != nil {
		return nil, storeErr("list product codes", err)
	}
	return codes, nil
}

// IncrementStock suma delta al stock en una sola sentencia y devuelve el nuevo nivel.
func (r *ProductRepo) IncrementStock(ctx context.Context, id string, delta int) (int, error) {
	var stock int
	err := sqlx.GetContext(ctx, r.q, &stock,
		`UPDATE products SET stock = stock + ?, updated_at = ? WHERE id = ? RETURNING stock`,
		delta, formatTS(now()), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, storeErr("increment stock", err)
	}
	return stock, nil
}

// Count número de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, r.q, &n, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, storeErr("count products", err)
	}
	return n, nil
}
