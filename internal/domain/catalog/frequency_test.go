package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 10, 0, 0, 0, time.UTC)
}

func TestClassifyFrequency(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		kind  catalog.FrequencyKind
		days  int
		label string
	}{
		{"sin pedidos", nil, catalog.FrequencyNoOrders, 0, "sin pedidos"},
		{"un pedido", []time.Time{day(3)}, catalog.FrequencySingleOrder, 0, "pedido único"},
		{"días 1, 8 y 15", []time.Time{day(1), day(8), day(15)}, catalog.FrequencyEveryNDays, 7, "cada 7 días"},
		{"desordenados", []time.Time{day(15), day(1), day(8)}, catalog.FrequencyEveryNDays, 7, "cada 7 días"},
		{"mismo día", []time.Time{day(4), day(4).Add(3 * time.Hour)}, catalog.FrequencySameDay, 0, "mismo día"},
		{"diario", []time.Time{day(1), day(2), day(3)}, catalog.FrequencyEveryNDays, 1, "cada 1 día"},
		{"redondea el promedio", []time.Time{day(1), day(4), day(11)}, catalog.FrequencyEveryNDays, 5, "cada 5 días"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.ClassifyFrequency(tt.dates)
			assert.Equal(t, tt.kind, got.Kind)
			assert.Equal(t, tt.days, got.Days)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}
