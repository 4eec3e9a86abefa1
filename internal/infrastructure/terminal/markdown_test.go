package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/copyshop-ledger/internal/application/dto"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

func report() *dto.SalesReport {
	return &dto.SalesReport{
		ShopName: "Toko Fotocopy",
		Currency: "IDR",
		Summary: &dto.SummaryResponse{
			Filter: dto.SaleFilter{Category: entity.CategoryStationery},
			Period: "2024-05-01",
			Groups: []dto.SummaryGroupResponse{{
				Category: entity.CategoryStationery, PaymentMethod: entity.PaymentCash,
				Transactions: 1, Revenue: decimal.NewFromInt(9000), Average: decimal.NewFromInt(9000),
			}},
			Categories: []dto.SummaryCategoryResponse{{
				Category: entity.CategoryStationery, Label: "ATK", Transactions: 1,
				Revenue: decimal.NewFromInt(9000), Cost: decimal.NewFromInt(6000), Profit: decimal.NewFromInt(3000),
			}},
			Transactions: 1,
			Revenue:      decimal.NewFromInt(9000),
			Cost:         decimal.NewFromInt(6000),
			Profit:       decimal.NewFromInt(3000),
		},
		Sales: []dto.SaleResponse{{
			Category: entity.CategoryStationery, PaymentMethod: entity.PaymentCash, TotalAmount: decimal.NewFromInt(9000),
			Items:     []dto.SaleItemResponse{{Name: "Pulpen Biru", Quantity: 3}},
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		}},
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(report(), true)
	assert.Contains(t, md, "# Toko Fotocopy")
	assert.Contains(t, md, "Período: **2024-05-01** · ATK")
	assert.Contains(t, md, "| ATK | 1 |")
	assert.Contains(t, md, "| ATK | Tunai | 1 |")
	assert.Contains(t, md, "3× Pulpen Biru")
	assert.Contains(t, md, "2024-05-01 10:00")

	short := SummaryMarkdown(report(), false)
	assert.NotContains(t, short, "## Ventas")
}

func TestSummaryMarkdown_SinVentas(t *testing.T) {
	r := report()
	r.Sales = nil
	assert.Contains(t, SummaryMarkdown(r, true), "Sin ventas en el período")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, "# Hola\n\n| a | b |\n|--|--|\n| 1 | 2 |\n", "notty", 80))
	assert.Contains(t, buf.String(), "Hola")
}
