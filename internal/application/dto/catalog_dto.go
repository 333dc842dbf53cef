package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRequest alta o edición de una entrada de precio.
type PriceRequest struct {
	Section   string          `json:"section"`
	Product   string          `json:"product"`
	Weight    string          `json:"weight"`
	PriceType string          `json:"price_type"` // minorista | mayorista
	Price     decimal.Decimal `json:"price"`
	IsActive  *bool           `json:"is_active"` // por defecto true
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Options   []string        `json:"options"`
}

// PriceResponse entrada del catálogo.
type PriceResponse struct {
	ID        string          `json:"id"`
	Section   string          `json:"section"`
	Product   string          `json:"product"`
	Weight    string          `json:"weight"`
	Kilos     int             `json:"kilos"`
	PriceType string          `json:"price_type"`
	Price     decimal.Decimal `json:"price"`
	IsActive  bool            `json:"is_active"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Options   []string        `json:"options"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SelectOptionDTO opción del menú de selección de productos.
type SelectOptionDTO struct {
	Label   string          `json:"label"` // "BIG DOG (15KG) - POLLO"
	Product string          `json:"product"`
	Weight  string          `json:"weight"`
	Option  string          `json:"option"`
	Price   decimal.Decimal `json:"price"`
}
