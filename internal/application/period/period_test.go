package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Petfood-admin/internal/domain"
)

func TestParse_PorDefectoMesEnCurso(t *testing.T) {
	now := time.Date(2026, time.March, 17, 15, 30, 0, 0, time.UTC)
	r, err := Parse("", "", now, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC), r.End)
	assert.Equal(t, "2026-03-01", r.StartLabel())
	assert.Equal(t, "2026-03-17", r.EndLabel())
}

func TestParse_EndInclusive(t *testing.T) {
	r, err := Parse("2026-01-15", "2026-03-10", time.Now(), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC), r.End)
	require.Len(t, r.Months(), 3)
	assert.Equal(t, time.January, r.Months()[0].Month())
	assert.Equal(t, time.March, r.Months()[2].Month())
}

func TestParse_MismoDia(t *testing.T) {
	r, err := Parse("2026-03-10", "2026-03-10", time.Now(), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, r.End.Sub(r.Start))
}

func TestParse_Errores(t *testing.T) {
	tests := []struct{ start, end string }{
		{"2026-13-01", ""},
		{"", "ayer"},
		{"2026-03-10", "2026-03-01"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.start, tt.end, time.Now(), time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%s..%s", tt.start, tt.end)
	}
}

func TestParse_ZonaHoraria(t *testing.T) {
	loc := time.FixedZone("ART", -3*3600)
	// 01:00 UTC del 1 de abril todavía es 31 de marzo en ART.
	now := time.Date(2026, time.April, 1, 1, 0, 0, 0, time.UTC)
	r, err := Parse("", "", now, loc)
	require.NoError(t, err)
	assert.Equal(t, time.March, r.Start.Month())
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Febrero 2026", MonthLabel(time.February, 2026))
	assert.Equal(t, "Diciembre", MonthName(time.December))
}
