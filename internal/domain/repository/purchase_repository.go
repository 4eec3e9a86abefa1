package repository

import (
	"context"
	"time"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// PurchaseFilter filtros de entradas de stock. Category y Search se aplican sobre el producto actual,
// por lo que excluyen las entradas cuyo producto ya no existe.
type PurchaseFilter struct {
	Category string
	Search   string
	From     *time.Time
	To       *time.Time
}

// PurchaseRepository define el puerto de persistencia para Purchase.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	// List une cada entrada con el producto actual (LEFT JOIN), de la más reciente a la más antigua.
	List(ctx context.Context, filter PurchaseFilter) ([]*entity.PurchaseView, error)
}
