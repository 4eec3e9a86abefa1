package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/copyshop-ledger/pkg/currency"
)

func TestFormat_USD(t *testing.T) {
	assert.Equal(t, "$9,000.00", currency.Format(decimal.NewFromInt(9000), "USD"))
	assert.Equal(t, "$0.50", currency.Format(decimal.RequireFromString("0.5"), "USD"))
}

func TestFormat_IDRIncluyeSimbolo(t *testing.T) {
	out := currency.Formatter{Code: "IDR"}.Format(decimal.NewFromInt(3000))
	assert.Contains(t, out, "Rp")
	assert.Contains(t, out, "3")
}

func TestFormat_MonedaDesconocida(t *testing.T) {
	assert.Equal(t, "12.50 XYZ", currency.Format(decimal.RequireFromString("12.5"), "XYZ"))
}
