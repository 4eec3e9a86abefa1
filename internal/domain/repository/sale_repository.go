package repository

import (
	"context"
	"time"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// SaleFilter filtros de ventas. From inclusivo, To exclusivo (límites ya resueltos en la zona de la tienda).
type SaleFilter struct {
	Category      string
	PaymentMethod string
	From          *time.Time
	To            *time.Time
}

// SaleRepository define el puerto de persistencia para Sale. Los ítems viajan como un único blob JSON.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List ordena de la más reciente a la más antigua.
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
	Delete(ctx context.Context, id string) (bool, error)
}
