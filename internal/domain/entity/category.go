package entity

// Categorías de producto y de venta.
// stationery (ATK) y consumable (makanan/minuman) tienen stock; service (fotocopia/impresión) no.
const (
	CategoryStationery = "stationery"
	CategoryConsumable = "consumable"
	CategoryService    = "service"
)

// Métodos de pago. electronic agrupa QRIS, transferencia y tarjeta.
const (
	PaymentCash       = "cash"
	PaymentElectronic = "electronic"
)

// Tipos de servicio de copiado/impresión conocidos (se aceptan otros con etiqueta genérica).
const (
	ServicePhotocopy  = "photocopy"
	ServiceColorPrint = "color-print"
)

// ProductCategories categorías válidas para un Product, en orden de presentación.
var ProductCategories = []string{CategoryStationery, CategoryConsumable}

// SaleCategories categorías válidas para una Sale, en orden de presentación.
var SaleCategories = []string{CategoryStationery, CategoryConsumable, CategoryService}

// IsProductCategory indica si c admite productos con stock.
func IsProductCategory(c string) bool {
	return c == CategoryStationery || c == CategoryConsumable
}

// IsSaleCategory indica si c es una categoría de venta válida.
func IsSaleCategory(c string) bool {
	return IsProductCategory(c) || c == CategoryService
}

// IsPaymentMethod indica si m es un método de pago válido.
func IsPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentElectronic
}

// CategoryLabel etiqueta legible para reportes.
func CategoryLabel(c string) string {
	switch c {
	case CategoryStationery:
		return "ATK"
	case CategoryConsumable:
		return "Makanan & Minuman"
	case CategoryService:
		return "Fotocopy & Print"
	default:
		return c
	}
}

// PaymentLabel etiqueta legible del método de pago.
func PaymentLabel(m string) string {
	switch m {
	case PaymentCash:
		return "Tunai"
	case PaymentElectronic:
		return "Non-tunai"
	default:
		return m
	}
}

// ServiceLabel etiqueta legible del tipo de servicio.
func ServiceLabel(s string) string {
	switch s {
	case ServicePhotocopy:
		return "Fotocopy"
	case ServiceColorPrint:
		return "Print Warna"
	default:
		return s
	}
}
