package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/application/inventory"
	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/repository"
	"github.com/jhoicas/copyshop-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/copyshop-ledger/pkg/date"
	"github.com/jhoicas/copyshop-ledger/pkg/logger"
)

func setup(t *testing.T) (*inventory.AdjustStockUseCase, *sqlite.Store, *entity.Product) {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	store := sqlite.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })

	p := &entity.Product{Code: "ATK-001", Name: "Pulpen", Category: entity.CategoryStationery,
		Cost: decimal.NewFromInt(2000), Price: decimal.NewFromInt(3000)}
	require.NoError(t, store.Repositories().Products.Create(context.Background(), p))

	uc := inventory.NewAdjustStockUseCase(store, inventory.NewKeyedLock(), nil, logger.Nop())
	return uc, store, p
}

func purchases(t *testing.T, store *sqlite.Store) []*entity.PurchaseView {
	t.Helper()
	list, err := store.Repositories().Purchases.List(context.Background(), repository.PurchaseFilter{})
	require.NoError(t, err)
	return list
}

func TestAdjustStock_PositivoRegistraEntrada(t *testing.T) {
	ctx := context.Background()
	uc, store, p := setup(t)

	stock, err := uc.AdjustStock(ctx, p.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, stock)

	list := purchases(t, store)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ProductID)
	assert.Equal(t, 10, list[0].Quantity)

	movs, err := uc.ListMovements(ctx, p.ID, date.Range{})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementRestock, movs[0].Reason)
	assert.Equal(t, 10, movs[0].StockAfter)
	assert.True(t, movs[0].CreatedAt.Equal(list[0].CreatedAt), "entrada y ajuste comparten timestamp")
}

func TestAdjustStock_NegativoSinEntrada(t *testing.T) {
	ctx := context.Background()
	uc, store, p := setup(t)

	stock, err := uc.AdjustStock(ctx, p.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, -4, stock, "las correcciones pueden dejar stock negativo")
	assert.Empty(t, purchases(t, store))

	movs, err := uc.ListMovements(ctx, p.ID, date.Range{})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementCorrection, movs[0].Reason)
}

func TestAdjustStock_Rechazos(t *testing.T) {
	ctx := context.Background()
	uc, store, p := setup(t)

	_, err := uc.AdjustStock(ctx, p.ID, 0)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = uc.AdjustStock(ctx, "no-existe", 5)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Empty(t, purchases(t, store), "sin efecto parcial")

	_, err = uc.AdjustStock(ctx, "", 5)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestAdjustStock_UnaEntradaPorDeltaPositivo(t *testing.T) {
	ctx := context.Background()
	uc, store, p := setup(t)

	deltas := []int{3, -1, 7, 2, -5, 1}
	positives := map[int]int{}
	for _, delta := range deltas {
		_, err := uc.AdjustStock(ctx, p.ID, delta)
		require.NoError(t, err)
		if delta > 0 {
			positives[delta]++
		}
	}
	got := map[int]int{}
	for _, pu := range purchases(t, store) {
		got[pu.Quantity]++
	}
	assert.Equal(t, positives, got)

	current, err := store.Repositories().Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, current.Stock)
}

func TestAdjustStock_ConcurrenteSinPerderActualizaciones(t *testing.T) {
	ctx := context.Background()
	uc, store, p := setup(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AdjustStock(ctx, p.ID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	current, err := store.Repositories().Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, current.Stock)
	assert.Len(t, purchases(t, store), 20)
}

func TestListMovements_RangoInvalido(t *testing.T) {
	uc, _, p := setup(t)
	_, err := uc.ListMovements(context.Background(), p.ID, date.Range{From: date.MustParse("2024-02-01"), To: date.MustParse("2024-01-01")})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
