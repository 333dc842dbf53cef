package wholesale

import (
	"math"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// outletStats calcula las estadísticas de un punto de venta a partir de sus pedidos mayoristas.
// Un punto de venta sin pedidos devuelve un registro en cero con frecuencia no_orders.
func outletStats(o *entity.Outlet, orders []entity.Order, m *catalog.Matcher) (dto.OutletStatsDTO, *unmatchedTally) {
	tally := newUnmatchedTally()
	out := dto.OutletStatsDTO{
		OutletID:   o.ID,
		OutletName: o.Name,
		Zone:       o.Zone,
		Unmatched:  []dto.UnmatchedNameDTO{},
	}
	if len(orders) == 0 {
		out.Frequency = frequencyDTO(catalog.ClassifyFrequency(nil))
		return out, tally
	}

	var (
		total     float64
		lastKilos float64
		first     = orders[0].CreatedAt
		last      = orders[0].CreatedAt
		dates     = make([]time.Time, 0, len(orders))
	)
	for _, ord := range orders {
		kilos := orderKilos(ord, m, tally)
		total += kilos
		dates = append(dates, ord.CreatedAt)
		if ord.CreatedAt.Before(first) {
			first = ord.CreatedAt
		}
		if !ord.CreatedAt.Before(last) {
			last = ord.CreatedAt
			lastKilos = kilos
		}
	}

	out.TotalKilos = int(math.Round(total))
	out.AverageKilos = round2(total / float64(len(orders)))
	out.LastOrderKilos = round2(lastKilos)
	out.OrderCount = len(orders)
	out.FirstOrderAt = &first
	out.LastOrderAt = &last
	out.Frequency = frequencyDTO(catalog.ClassifyFrequency(dates))
	out.Unmatched = tally.dto()
	return out, tally
}

// orderKilos suma los kilos de los ítems con match. Los ítems sin match se cuentan en tally.
func orderKilos(ord entity.Order, m *catalog.Matcher, tally *unmatchedTally) float64 {
	var kilos float64
	for _, it := range ord.Items {
		k, res := m.ItemKilos(it)
		if !res.Matched {
			tally.add(res.OriginalName, 1, catalog.LineAmount(it), ord.CreatedAt)
			continue
		}
		kilos += k
	}
	return kilos
}

// monthlyLedger kilos por mes calendario (en loc) de los pedidos de un punto de venta.
func monthlyLedger(orders []entity.Order, m *catalog.Matcher, loc *time.Location, tally *unmatchedTally) map[int]float64 {
	byMonth := make(map[int]float64)
	for _, ord := range orders {
		t := ord.CreatedAt.In(loc)
		byMonth[t.Year()*12+int(t.Month())-1] += orderKilos(ord, m, tally)
	}
	return byMonth
}

func frequencyDTO(f catalog.Frequency) dto.FrequencyDTO {
	return dto.FrequencyDTO{Kind: string(f.Kind), Days: f.Days, Label: f.Label}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
