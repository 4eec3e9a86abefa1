package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/pkg/date"
)

// ExpenseRequest alta o edición de un gasto. Date vacío = hoy (zona de la tienda) al crear; al editar se conserva.
type ExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        date.Date       `json:"date"`
}

// ExpenseFilter filtros de gastos.
type ExpenseFilter struct {
	Search   string `query:"search"`
	DateFrom string `query:"date_from"`
	DateTo   string `query:"date_to"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        date.Date       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseSummaryResponse total de gastos del período.
type ExpenseSummaryResponse struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	Count       int             `json:"count"`
}
