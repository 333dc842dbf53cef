package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnmatchedItem nombre de ítem de pedido que no coincidió con ninguna entrada del catálogo.
// Se audita para corregir el catálogo o los nombres cargados en los pedidos.
type UnmatchedItem struct {
	NormalizedName string
	SampleName     string
	Occurrences    int
	Amount         decimal.Decimal // importe de las líneas sin match: lo vendido que no suma kilos
	LastSeenAt     time.Time
}
