package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
)

func TestFormatThousands(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1.000",
		25000:   "25.000",
		1000000: "1.000.000",
		-1500:   "-1.500",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatThousands(in))
	}
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "1.234,50", formatDecimal(1234.5))
	assert.Equal(t, "45,00", formatDecimal(45))
	assert.Equal(t, "0,25", formatDecimal(0.25))
	assert.Equal(t, "-0,25", formatDecimal(-0.25))
}

func TestGenerateStatsPDF(t *testing.T) {
	first := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	stats := &dto.WholesaleStatsDTO{
		GeneratedAt: time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC),
		TotalKilos:  135,
		Outlets: []dto.OutletStatsDTO{
			{OutletName: "Forrajería Norte", Zone: "Norte", TotalKilos: 135, OrderCount: 3, AverageKilos: 45,
				LastOrderKilos: 45, FirstOrderAt: &first, LastOrderAt: &first,
				Frequency: dto.FrequencyDTO{Kind: "every_n_days", Days: 7, Label: "cada 7 días"},
				Unmatched: []dto.UnmatchedNameDTO{{Name: "Huesos", Occurrences: 2}}},
			{OutletName: "Veterinaria Sur", Frequency: dto.FrequencyDTO{Kind: "no_orders", Label: "sin pedidos"}},
		},
		Unmatched: []dto.UnmatchedNameDTO{{Name: "Huesos", Occurrences: 2}},
	}

	out, err := NewMarotoPDFGenerator(time.UTC).GenerateStatsPDF(stats)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
