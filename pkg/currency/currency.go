// Package currency formatea montos decimales con el símbolo y los separadores de una moneda ISO 4217.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format devuelve amount (en unidad mayor) formateado, p.ej. 9000 IDR -> "Rp9.000,00".
// Si la moneda no es conocida se usa "<monto con 2 decimales> <código>".
func Format(amount decimal.Decimal, code string) string {
	cur := *money.New(0, code).Currency()
	if cur.Template == "" {
		return amount.StringFixed(2) + " " + code
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// Formatter fija la moneda para no repetir el código en cada llamada.
type Formatter struct {
	Code string
}

// Format formatea con la moneda del Formatter.
func (f Formatter) Format(amount decimal.Decimal) string {
	return Format(amount, f.Code)
}
