package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/ledger"
)

func sale(cat, pm string, items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{Category: cat, PaymentMethod: pm, TotalAmount: ledger.ItemsTotal(items), Items: items}
}

func item(price, cost string, qty int) entity.SaleItem {
	return entity.SaleItem{ProductID: "p", Price: d(price), Cost: d(cost), Quantity: qty, Total: ledger.LineTotal(d(price), qty)}
}

func TestSummarize_PorCategoria(t *testing.T) {
	sales := []*entity.Sale{
		sale(entity.CategoryStationery, entity.PaymentCash, item("3000", "2000", 3)),
		sale(entity.CategoryStationery, entity.PaymentElectronic, item("4500", "3000", 2)),
		sale(entity.CategoryConsumable, entity.PaymentCash, item("3000", "2000", 1)),
		sale(entity.CategoryService, entity.PaymentCash, entity.SaleItem{ServiceType: entity.ServicePhotocopy, Price: d("250"), Quantity: 20, Total: d("5000")}),
		{Category: entity.CategoryStationery, PaymentMethod: entity.PaymentCash},
	}
	s := ledger.Summarize(sales, entity.SaleCategories, d("1500"))

	require.Len(t, s.Categories, 3)
	atk := s.Categories[0]
	assert.Equal(t, entity.CategoryStationery, atk.Category)
	assert.Equal(t, 2, atk.Transactions, "la venta sin líneas no cuenta")
	assert.True(t, atk.Revenue.Equal(d("18000")))
	assert.True(t, atk.Cost.Equal(d("12000")))
	assert.True(t, atk.Profit.Equal(d("6000")))

	svc := s.Categories[2]
	assert.True(t, svc.Cost.Equal(d("1500")), "el costo de servicios son los gastos")
	assert.True(t, svc.Profit.Equal(d("3500")))

	assert.Equal(t, 4, s.Transactions)
	assert.True(t, s.Revenue.Equal(d("26000")))
	assert.True(t, s.Cost.Equal(d("15500")))
	assert.True(t, s.Profit.Equal(d("10500")))

	require.Len(t, s.Groups, 4)
	assert.Equal(t, entity.CategoryStationery, s.Groups[0].Category)
	assert.Equal(t, entity.PaymentCash, s.Groups[0].PaymentMethod)
	assert.True(t, s.Groups[0].Average.Equal(d("9000")))
	assert.Equal(t, entity.PaymentElectronic, s.Groups[1].PaymentMethod)
	assert.Equal(t, entity.CategoryService, s.Groups[3].Category)
}

func TestSummarize_SoloCategoriaFiltrada(t *testing.T) {
	sales := []*entity.Sale{sale(entity.CategoryStationery, entity.PaymentCash, item("3000", "2000", 3))}
	s := ledger.Summarize(sales, []string{entity.CategoryStationery}, decimal.Zero)
	assert.Equal(t, 1, s.Transactions)
	assert.True(t, s.Revenue.Equal(d("9000")))
	assert.True(t, s.Cost.Equal(d("6000")))
	assert.True(t, s.Profit.Equal(d("3000")))
}

func TestSummarize_Vacio(t *testing.T) {
	s := ledger.Summarize(nil, entity.SaleCategories, decimal.Zero)
	assert.Zero(t, s.Transactions)
	assert.True(t, s.Revenue.IsZero())
	assert.Empty(t, s.Groups)
	assert.Len(t, s.Categories, 3)
}
