// Package ledger reúne las reglas puras del libro de ventas e inventario:
// códigos de producto, totales de venta, vuelto y agregados de reportes.
package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/copyshop-ledger/internal/domain"
	"github.com/jhoicas/copyshop-ledger/internal/domain/entity"
)

const codeDigits = 3

// CodePrefix prefijo del código de producto según su categoría.
func CodePrefix(category string) (string, error) {
	switch category {
	case entity.CategoryStationery:
		return "ATK", nil
	case entity.CategoryConsumable:
		return "MM", nil
	default:
		return "", domain.Invalid("category", fmt.Sprintf("categoría de producto desconocida %q", category))
	}
}

// NextProductCode siguiente código libre para la categoría: el mayor sufijo numérico existente + 1,
// con relleno a 3 dígitos. Códigos que no siguen el patrón PREFIJO-dígitos se ignoran.
func NextProductCode(category string, existing []string) (string, error) {
	prefix, err := CodePrefix(category)
	if err != nil {
		return "", err
	}
	max := 0
	for _, c := range existing {
		n, ok := codeNumber(prefix, c)
		if ok && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%0*d", prefix, codeDigits, max+1), nil
}

func codeNumber(prefix, code string) (int, bool) {
	rest, ok := strings.CutPrefix(code, prefix+"-")
	if !ok || rest == "" {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
