package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

// LineTotal precio × cantidad.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// PriceItems valida las líneas de una venta de la categoría dada y calcula cada total.
// Si una línea trae Total distinto de cero debe coincidir con precio × cantidad.
// Devuelve las líneas con Total resuelto y la suma de la venta.
func PriceItems(category string, items []entity.SaleItem) ([]entity.SaleItem, decimal.Decimal, error) {
	if !entity.IsSaleCategory(category) {
		return nil, decimal.Zero, domain.Invalid("category", fmt.Sprintf("categoría de venta desconocida %q", category))
	}
	if len(items) == 0 {
		return nil, decimal.Zero, domain.Invalid("items", "la venta no tiene líneas")
	}
	out := make([]entity.SaleItem, len(items))
	sum := decimal.Zero
	for i, it := range items {
		field := fmt.Sprintf("items[%d]", i)
		if it.Quantity <= 0 {
			return nil, decimal.Zero, domain.Invalid(field+".quantity", "debe ser mayor que cero")
		}
		if !it.Price.IsPositive() {
			return nil, decimal.Zero, domain.Invalid(field+".price", "debe ser mayor que cero")
		}
		if it.Cost.IsNegative() {
			return nil, decimal.Zero, domain.Invalid(field+".cost", "no puede ser negativo")
		}
		if category == entity.CategoryService {
			if it.ServiceType == "" {
				return nil, decimal.Zero, domain.Invalid(field+".service_type", "requerido en líneas de servicio")
			}
			if it.ProductID != "" {
				return nil, decimal.Zero, domain.Invalid(field+".product_id", "las líneas de servicio no llevan producto")
			}
			// Los servicios no tienen costo por línea; se cubren con gastos.
			it.Cost = decimal.Zero
		} else if it.ProductID == "" {
			return nil, decimal.Zero, domain.Invalid(field+".product_id", "requerido")
		}
		total := LineTotal(it.Price, it.Quantity)
		if !it.Total.IsZero() && !it.Total.Equal(total) {
			return nil, decimal.Zero, domain.Invalid(field+".total",
				fmt.Sprintf("%s no coincide con precio × cantidad = %s", it.Total, total))
		}
		it.Total = total
		out[i] = it
		sum = sum.Add(total)
	}
	return out, sum, nil
}

// ItemsTotal suma de los totales de línea.
func ItemsTotal(items []entity.SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum
}

// ItemsCost costo de las líneas de producto (snapshot de costo × cantidad). Servicios aportan cero.
func ItemsCost(items []entity.SaleItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if it.IsService() {
			continue
		}
		sum = sum.Add(LineTotal(it.Cost, it.Quantity))
	}
	return sum
}

// Change valida el pago y devuelve el vuelto.
// cash: recibido >= total, vuelto = recibido - total. electronic: lo recibido es exactamente el total.
func Change(method string, total, received decimal.Decimal) (decimal.Decimal, error) {
	if !total.IsPositive() {
		return decimal.Zero, domain.Invalid("total", "el total debe ser mayor que cero")
	}
	switch method {
	case entity.PaymentCash:
		if received.LessThan(total) {
			return decimal.Zero, domain.Invalid("received", fmt.Sprintf("recibido %s menor que el total %s", received, total))
		}
		return received.Sub(total), nil
	case entity.PaymentElectronic:
		return decimal.Zero, nil
	default:
		return decimal.Zero, domain.Invalid("payment_method", fmt.Sprintf("método de pago desconocido %q", method))
	}
}
