package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart carrito confirmado en caja. Lo arma y lo posee el llamador; el núcleo no guarda estado de carrito.
type Cart struct {
	PaymentMethod string            `json:"payment_method"`
	Received      decimal.Decimal   `json:"received"`
	GrandTotal    *decimal.Decimal  `json:"grand_total,omitempty"` // opcional; si viene debe coincidir
	Stationery    []CartProductLine `json:"stationery"`
	Consumable    []CartProductLine `json:"consumable"`
	Service       []CartServiceLine `json:"service"`
}

// CartProductLine línea de producto. Name, Price y Cost son snapshots opcionales:
// si faltan se toman del producto al confirmar.
type CartProductLine struct {
	ProductID string           `json:"product_id"`
	Name      string           `json:"name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Cost      *decimal.Decimal `json:"cost,omitempty"`
	Quantity  int              `json:"quantity"`
}

// CartServiceLine línea de fotocopia o impresión.
type CartServiceLine struct {
	ServiceType string          `json:"service_type"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Note        string          `json:"note,omitempty"`
}

// CheckoutResponse ventas creadas (una por categoría) y vuelto.
type CheckoutResponse struct {
	Sales      []SaleResponse  `json:"sales"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Received   decimal.Decimal `json:"received"`
	Change     decimal.Decimal `json:"change"`
}

// SaleItemRequest línea de una venta de una sola categoría.
// En líneas de producto, Name y Cost vacíos se toman del producto al registrar.
type SaleItemRequest struct {
	ProductID   string           `json:"product_id,omitempty"`
	Name        string           `json:"name,omitempty"`
	ServiceType string           `json:"service_type,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Quantity    int              `json:"quantity"`
	Total       decimal.Decimal  `json:"total"`
	Note        string           `json:"note,omitempty"`
}

// CreateSaleRequest venta de una sola categoría con sus líneas ya valorizadas.
type CreateSaleRequest struct {
	Category      string            `json:"category"`
	PaymentMethod string            `json:"payment_method"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Items         []SaleItemRequest `json:"items"`
}

// SaleFilter filtros de ventas y del resumen.
type SaleFilter struct {
	Category      string `json:"category,omitempty" query:"category"`
	PaymentMethod string `json:"payment_method,omitempty" query:"payment_method"`
	DateFrom      string `json:"date_from,omitempty" query:"date_from"`
	DateTo        string `json:"date_to,omitempty" query:"date_to"`
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ProductID    string          `json:"product_id,omitempty"`
	Name         string          `json:"name,omitempty"`
	ServiceType  string          `json:"service_type,omitempty"`
	ServiceLabel string          `json:"service_label,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Quantity     int             `json:"quantity"`
	Total        decimal.Decimal `json:"total"`
	Note         string          `json:"note,omitempty"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string             `json:"id"`
	Category      string             `json:"category"`
	PaymentMethod string             `json:"payment_method"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SummaryGroupResponse ventas por (categoría, método de pago).
type SummaryGroupResponse struct {
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method"`
	Transactions  int             `json:"transactions"`
	Revenue       decimal.Decimal `json:"revenue"`
	Average       decimal.Decimal `json:"average"`
}

// SummaryCategoryResponse ingresos, costo y utilidad por categoría.
type SummaryCategoryResponse struct {
	Category     string          `json:"category"`
	Label        string          `json:"label"`
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
}

// SummaryResponse resumen de ventas del período.
type SummaryResponse struct {
	Filter       SaleFilter                `json:"filter"`
	Period       string                    `json:"period"`
	Groups       []SummaryGroupResponse    `json:"groups"`
	Categories   []SummaryCategoryResponse `json:"categories"`
	Transactions int                       `json:"transactions"`
	Revenue      decimal.Decimal           `json:"revenue"`
	Cost         decimal.Decimal           `json:"cost"`
	Profit       decimal.Decimal           `json:"profit"`
	Expenses     decimal.Decimal           `json:"expenses"`
}
