package repository

import (
	"context"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// ProductFilter filtros de listado. Campos vacíos no filtran.
type ProductFilter struct {
	Category string
	Search   string // coincide con nombre o código, sin distinguir mayúsculas
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create asigna ID y timestamps si vienen vacíos. Código repetido -> domain.ErrDuplicate.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate como GetByID, pero dentro de una transacción bloquea la fila hasta el commit.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update escribe código, nombre, categoría, costo y precio. Nunca toca el stock.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) (bool, error)
	// List ordena por nombre.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// CodesWithPrefix devuelve los códigos que empiezan por prefix + "-".
	CodesWithPrefix(ctx context.Context, prefix string) ([]string, error)
	// IncrementStock aplica stock = stock + delta en el almacén y devuelve el nuevo nivel.
	// Producto inexistente -> domain.ErrNotFound.
	IncrementStock(ctx context.Context, id string, delta int) (int, error)
	Count(ctx context.Context) (int, error)
}
