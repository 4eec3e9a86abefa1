package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta confirmada de una sola categoría. Inmutable salvo borrado.
// TotalAmount es siempre la suma de Items[i].Total.
type Sale struct {
	ID            string
	Category      string // stationery | consumable | service
	PaymentMethod string // cash | electronic
	TotalAmount   decimal.Decimal
	Items         []SaleItem
	CreatedAt     time.Time
}

// SaleItem línea de venta. Nombre, precio y costo son snapshots tomados al confirmar el carrito;
// nunca se recalculan desde el producto actual.
// Líneas de producto: ProductID, Name, Price, Cost. Líneas de servicio: ServiceType, Price, Note.
// Los montos se guardan en JSON como texto decimal: vuelven con el mismo valor (Equal),
// no necesariamente con la misma escala.
type SaleItem struct {
	ProductID   string          `json:"product_id,omitempty"`
	Name        string          `json:"name,omitempty"`
	ServiceType string          `json:"service_type,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Note        string          `json:"note,omitempty"`
}

// IsService indica si la línea es de servicio (sin producto ni costo).
func (i SaleItem) IsService() bool { return i.ProductID == "" }
