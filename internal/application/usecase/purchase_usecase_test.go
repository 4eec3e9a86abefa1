package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

func TestPurchaseSummary_CostoActual(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	p := f.create(t, "Pulpen", entity.CategoryStationery, 10)
	m := f.create(t, "Kopi", entity.CategoryConsumable, 4)
	_, err := f.adjust.AdjustStock(ctx, p.ID, 5)
	require.NoError(t, err)
	_, err = f.adjust.AdjustStock(ctx, p.ID, -2)
	require.NoError(t, err)

	sum, err := f.purchases.Summary(ctx, dto.PurchaseFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 19, sum.TotalQuantity)
	assert.True(t, sum.TotalAmount.Equal(d("38000")), "19 × 2000, obtuvo %s", sum.TotalAmount)

	// El costo se lee del producto actual, no de la entrada.
	_, err = f.products.Update(ctx, p.ID, dto.UpdateProductRequest{Cost: ptr(d("2500"))})
	require.NoError(t, err)
	sum, err = f.purchases.Summary(ctx, dto.PurchaseFilter{Category: entity.CategoryStationery})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Count)
	assert.True(t, sum.TotalAmount.Equal(d("37500")))

	found, err := f.purchases.List(ctx, dto.PurchaseFilter{Search: "kopi"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, m.ID, found[0].ProductID)
}

func TestPurchaseList_FiltroDeFechas(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.create(t, "Pulpen", entity.CategoryStationery, 1)

	today := time.Now().UTC().Format("2006-01-02")
	list, err := f.purchases.List(ctx, dto.PurchaseFilter{DateFrom: today, DateTo: today})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.purchases.List(ctx, dto.PurchaseFilter{DateTo: "2000-01-01"})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.purchases.List(ctx, dto.PurchaseFilter{DateFrom: "ayer"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = f.purchases.List(ctx, dto.PurchaseFilter{DateFrom: "2024-02-01", DateTo: "2024-01-01"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
