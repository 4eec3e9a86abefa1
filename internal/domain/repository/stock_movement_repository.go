package repository

import (
	"context"
	"time"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// StockMovementFilter filtros del kardex. ProductID vacío lista todos los productos.
type StockMovementFilter struct {
	ProductID string
	From      *time.Time
	To        *time.Time
}

// StockMovementRepository define el puerto de persistencia para movimientos de stock (DIP).
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// List ordena cronológicamente.
	List(ctx context.Context, filter StockMovementFilter) ([]*entity.StockMovement, error)
}
