package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de precio.
const (
	PriceTypeMinorista = "minorista"
	PriceTypeMayorista = "mayorista"
)

// PricedProduct entrada del catálogo de precios. Se versiona por mes/año de vigencia:
// un mismo producto puede tener varias entradas (historial de precios).
type PricedProduct struct {
	ID        string
	Section   string
	Product   string
	Weight    string // etiqueta de peso, ej. "15KG"; puede estar vacía
	PriceType string // minorista | mayorista
	Price     decimal.Decimal
	IsActive  bool
	Month     int // 1..12
	Year      int
	Options   []string // variantes que se ofrecen en el menú de selección
	UpdatedAt time.Time
}
