package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// TotalQuantity devuelve las unidades compradas de un ítem.
// Con variantes: suma de la cantidad de cada una (cantidad ausente = 0).
// Sin variantes: el ítem cuenta como una unidad.
func TotalQuantity(item entity.LineItem) int {
	if len(item.Options) == 0 {
		return 1
	}
	total := 0
	for _, opt := range item.Options {
		total += opt.Quantity
	}
	return total
}

// LineAmount importe del ítem: precio por cantidad de cada variante, redondeado a centavos.
// Un ítem sin variantes no trae precio y suma cero.
func LineAmount(item entity.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, opt := range item.Options {
		total = total.Add(decimal.NewFromFloat(opt.Price).Mul(decimal.NewFromInt(int64(opt.Quantity))))
	}
	return total.Round(2)
}
