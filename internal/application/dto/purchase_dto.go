package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseFilter filtros de entradas de stock.
type PurchaseFilter struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
}

// PurchaseResponse entrada de stock con los datos actuales del producto.
// ProductFound es false si el producto fue borrado; los campos del producto quedan vacíos.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductFound bool            `json:"product_found"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PurchaseSummaryResponse totales de entradas valorizadas al costo actual.
type PurchaseSummaryResponse struct {
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalQuantity int             `json:"total_quantity"`
	Count         int             `json:"count"`
}
