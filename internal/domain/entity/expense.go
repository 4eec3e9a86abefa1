package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/pkg/date"
)

// Expense gasto operativo (papel, tinta, mantenimiento). Date tiene granularidad de día.
type Expense struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        date.Date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
