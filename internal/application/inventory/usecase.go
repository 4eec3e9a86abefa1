package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

// Adjustment delta de stock a aplicar dentro de una transacción.
type Adjustment struct {
	ProductID string
	Delta     int
	Reason    string    // entity.Movement*; vacío = restock o correction según el signo
	Reference string    // ID de venta cuando Reason = sale
	At        time.Time // cero = ahora
}

// AdjustStockUseCase aplica deltas de stock. Cada delta positivo deja exactamente una Purchase
// con la misma cantidad y timestamp; todo delta queda en el kardex.
// No valida suficiencia: las correcciones administrativas pueden dejar stock negativo.
type AdjustStockUseCase struct {
	store repository.Store
	locks *KeyedLock
	loc   *time.Location
	log   *logger.Logger
	now   func() time.Time
}

// NewAdjustStockUseCase construye el caso de uso. locks debe ser compartido con ventas y productos;
// loc es la zona horaria de la tienda para los filtros por día.
func NewAdjustStockUseCase(store repository.Store, locks *KeyedLock, loc *time.Location, log *logger.Logger) *AdjustStockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &AdjustStockUseCase{store: store, locks: locks, loc: loc, log: log.Component("inventory"), now: time.Now}
}

// AdjustStock aplica delta al producto en su propia transacción y devuelve el nuevo nivel.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, productID string, delta int) (int, error) {
	if productID == "" {
		return 0, domain.Invalid("product_id", "requerido")
	}
	if delta == 0 {
		return 0, domain.Invalid("delta", "no puede ser cero")
	}
	unlock := uc.locks.Lock(ProductKey(productID))
	defer unlock()

	var stock int
	err := uc.store.Run(ctx, func(repos repository.Repositories) error {
		var err error
		stock, err = uc.AdjustInTx(ctx, repos, Adjustment{ProductID: productID, Delta: delta})
		return err
	})
	if err != nil {
		return 0, err
	}
	uc.log.Info().Str("product_id", productID).Int("delta", delta).Int("stock", stock).Msg("stock ajustado")
	return stock, nil
}

// AdjustInTx aplica el ajuste con repos atados a una transacción abierta por el llamador,
// que además debe tener tomada la clave ProductKey del producto.
func (uc *AdjustStockUseCase) AdjustInTx(ctx context.Context, repos repository.Repositories, adj Adjustment) (int, error) {
	if adj.Delta == 0 {
		return 0, domain.Invalid("delta", "no puede ser cero")
	}
	at := adj.At
	if at.IsZero() {
		at = uc.now()
	}
	at = at.UTC()
	reason := adj.Reason
	if reason == "" {
		reason = entity.MovementRestock
		if adj.Delta < 0 {
			reason = entity.MovementCorrection
		}
	}

	stock, err := repos.Products.IncrementStock(ctx, adj.ProductID, adj.Delta)
	if err != nil {
		return 0, err
	}
	if adj.Delta > 0 {
		if err := repos.Purchases.Create(ctx, &entity.Purchase{
			ProductID: adj.ProductID,
			Quantity:  adj.Delta,
			CreatedAt: at,
		}); err != nil {
			return 0, err
		}
	}
	if err := repos.Movements.Create(ctx, &entity.StockMovement{
		ProductID:  adj.ProductID,
		Delta:      adj.Delta,
		StockAfter: stock,
		Reason:     reason,
		Reference:  adj.Reference,
		CreatedAt:  at,
	}); err != nil {
		return 0, err
	}
	return stock, nil
}

// ListMovements kardex de un producto (o de todos si productID es vacío) en el rango de días dado.
func (uc *AdjustStockUseCase) ListMovements(ctx context.Context, productID string, rng date.Range) ([]*entity.StockMovement, error) {
	if err := rng.Validate(); err != nil {
		return nil, domain.Invalid("date_to", err.Error())
	}
	from, to := rng.Bounds(uc.loc)
	return uc.store.Repositories().Movements.List(ctx, repository.StockMovementFilter{
		ProductID: productID,
		From:      from,
		To:        to,
	})
}
