package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo con stock (ATK o consumible).
// Code es único y depende de la categoría (ATK-001, MM-001); Stock solo cambia vía ajustes.
type Product struct {
	ID        string
	Code      string
	Name      string
	Category  string          // stationery | consumable
	Cost      decimal.Decimal // costo unitario de compra
	Price     decimal.Decimal // precio unitario de venta
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
