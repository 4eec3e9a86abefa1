package entity

import "time"

// Motivos de movimiento de stock.
const (
	MovementInitial    = "initial"    // stock inicial al crear el producto
	MovementRestock    = "restock"    // reposición manual
	MovementSale       = "sale"       // salida por venta
	MovementCorrection = "correction" // ajuste administrativo negativo
)

// StockMovement bitácora de cada delta aplicado al stock de un producto.
type StockMovement struct {
	ID         string
	ProductID  string
	Delta      int // positivo entrada, negativo salida
	StockAfter int
	Reason     string
	Reference  string // ID de la venta cuando Reason = sale
	CreatedAt  time.Time
}
