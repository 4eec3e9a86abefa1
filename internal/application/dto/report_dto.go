package dto

import "time"

// SalesReport datos de un reporte impreso de ventas (PDF o terminal).
type SalesReport struct {
	ShopName    string
	Currency    string
	GeneratedAt time.Time
	Summary     *SummaryResponse
	Sales       []SaleResponse
}
