package dto

import "time"

// AdjustStockRequest entrada para ajustar stock. Delta positivo = entrada, negativo = corrección.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
}

// AdjustStockResponse nuevo nivel de stock tras el ajuste.
type AdjustStockResponse struct {
	Changed   bool   `json:"changed"`
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

// MovementFilter filtros del kardex.
type MovementFilter struct {
	ProductID string `query:"product_id"`
	DateFrom  string `query:"date_from"`
	DateTo    string `query:"date_to"`
}

// StockMovementResponse salida de un movimiento.
type StockMovementResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Delta      int       `json:"delta"`
	StockAfter int       `json:"stock_after"`
	Reason     string    `json:"reason"`
	Reference  string    `json:"reference,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
