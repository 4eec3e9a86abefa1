package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase entrada de stock (no es la compra de un cliente). Se crea únicamente como efecto
// de un ajuste positivo y no guarda snapshot de nombre ni precio.
type Purchase struct {
	ID        string
	ProductID string
	Quantity  int
	CreatedAt time.Time
}

// PurchaseView Purchase unida con los datos actuales del producto.
// Si el producto fue borrado, ProductFound es false y los campos del producto quedan vacíos.
type PurchaseView struct {
	Purchase
	ProductFound bool
	Code         string
	Name         string
	Category     string
	UnitCost     decimal.Decimal
}

// Amount costo de la entrada valorizado al costo actual del producto.
func (p PurchaseView) Amount() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
