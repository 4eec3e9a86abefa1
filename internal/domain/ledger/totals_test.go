package ledger_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
	"github.com/jhoicas/copyshop-ledger/internal/domain/ledger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPriceItems_CalculaTotales(t *testing.T) {
	items := []entity.SaleItem{
		{ProductID: "p1", Name: "Pulpen", Price: d("3000"), Cost: d("2000"), Quantity: 3},
		{ProductID: "p2", Name: "Pensil", Price: d("4500"), Cost: d("3000"), Quantity: 1, Total: d("4500")},
	}
	out, sum, err := ledger.PriceItems(entity.CategoryStationery, items)
	require.NoError(t, err)
	assert.True(t, out[0].Total.Equal(d("9000")))
	assert.True(t, sum.Equal(d("13500")))
	assert.True(t, sum.Equal(ledger.ItemsTotal(out)))
	assert.True(t, ledger.ItemsCost(out).Equal(d("9000")))
	assert.True(t, items[0].Total.IsZero(), "no debe mutar la entrada")
}

func TestPriceItems_Rechazos(t *testing.T) {
	cases := []struct {
		name     string
		category string
		items    []entity.SaleItem
		field    string
	}{
		{"sin líneas", entity.CategoryStationery, nil, "items"},
		{"cantidad cero", entity.CategoryStationery, []entity.SaleItem{{ProductID: "p", Price: d("1"), Quantity: 0}}, "items[0].quantity"},
		{"precio cero", entity.CategoryConsumable, []entity.SaleItem{{ProductID: "p", Quantity: 1}}, "items[0].price"},
		{"total distinto", entity.CategoryStationery, []entity.SaleItem{{ProductID: "p", Price: d("2"), Quantity: 2, Total: d("5")}}, "items[0].total"},
		{"servicio sin tipo", entity.CategoryService, []entity.SaleItem{{Price: d("500"), Quantity: 10}}, "items[0].service_type"},
		{"producto sin id", entity.CategoryStationery, []entity.SaleItem{{Price: d("500"), Quantity: 1}}, "items[0].product_id"},
		{"categoría", "food", []entity.SaleItem{{ProductID: "p", Price: d("1"), Quantity: 1}}, "category"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ledger.PriceItems(tc.category, tc.items)
			require.Error(t, err)
			var ve *domain.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestPriceItems_ServicioSinCosto(t *testing.T) {
	out, sum, err := ledger.PriceItems(entity.CategoryService, []entity.SaleItem{
		{ServiceType: entity.ServicePhotocopy, Price: d("250"), Cost: d("100"), Quantity: 40, Note: "bolak-balik"},
	})
	require.NoError(t, err)
	assert.True(t, sum.Equal(d("10000")))
	assert.True(t, out[0].Cost.IsZero())
	assert.True(t, ledger.ItemsCost(out).IsZero())
}

func TestChange(t *testing.T) {
	change, err := ledger.Change(entity.PaymentCash, d("9000"), d("10000"))
	require.NoError(t, err)
	assert.True(t, change.Equal(d("1000")))

	change, err = ledger.Change(entity.PaymentCash, d("9000"), d("9000"))
	require.NoError(t, err)
	assert.True(t, change.IsZero())

	_, err = ledger.Change(entity.PaymentCash, d("9000"), d("5000"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	change, err = ledger.Change(entity.PaymentElectronic, d("9000"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, change.IsZero(), "pago electrónico no da vuelto")

	_, err = ledger.Change(entity.PaymentCash, decimal.Zero, d("1000"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "total cero")

	_, err = ledger.Change("crypto", d("1"), d("1"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
