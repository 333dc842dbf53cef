package catalog

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// FrequencyKind clasificación de la frecuencia de compra de un punto de venta.
type FrequencyKind string

const (
	FrequencyNoOrders    FrequencyKind = "no_orders"
	FrequencySingleOrder FrequencyKind = "single_order"
	FrequencySameDay     FrequencyKind = "same_day"
	FrequencyEveryNDays  FrequencyKind = "every_n_days"
)

// Frequency clasificación + etiqueta legible. Days solo tiene sentido para FrequencyEveryNDays.
type Frequency struct {
	Kind  FrequencyKind
	Days  int
	Label string
}

// ClassifyFrequency clasifica según el promedio (redondeado) de días entre pedidos consecutivos.
func ClassifyFrequency(dates []time.Time) Frequency {
	switch len(dates) {
	case 0:
		return Frequency{Kind: FrequencyNoOrders, Label: "sin pedidos"}
	case 1:
		return Frequency{Kind: FrequencySingleOrder, Label: "pedido único"}
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	// Promedio de las diferencias consecutivas = (último - primero) / (n - 1).
	span := sorted[len(sorted)-1].Sub(sorted[0])
	meanDays := span.Hours() / 24 / float64(len(sorted)-1)
	days := int(math.Round(meanDays))

	if days == 0 {
		return Frequency{Kind: FrequencySameDay, Label: "mismo día"}
	}
	unit := "días"
	if days == 1 {
		unit = "día"
	}
	return Frequency{Kind: FrequencyEveryNDays, Days: days, Label: fmt.Sprintf("cada %d %s", days, unit)}
}
