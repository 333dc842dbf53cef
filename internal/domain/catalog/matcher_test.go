package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testEntries() []catalog.Entry {
	return []catalog.Entry{
		catalog.NewEntry("BIG DOG", "15KG"),
		catalog.NewEntry("BIG DOG", "3KG"),
		catalog.NewEntry("GATO PESCADO", "10KG"),
		catalog.NewEntry("DOG", "20KG"),
		catalog.NewEntry("PATITAS", ""),
	}
}

func item(name string, qty ...int) entity.LineItem {
	it := entity.LineItem{Name: name}
	for _, q := range qty {
		it.Options = append(it.Options, entity.ItemOption{Name: "POLLO", Quantity: q})
	}
	return it
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestNewEntry(t *testing.T) {
	e := catalog.NewEntry("Big Dog", "15kg")
	assert.Equal(t, "BIG DOG 15KG", e.FullName)
	assert.Equal(t, "BIG DOG", e.ProductName)
	assert.Equal(t, "15KG", e.WeightLabel)
	assert.Equal(t, 15, e.Kilos)

	sinPeso := catalog.NewEntry("Patitas", "")
	assert.Equal(t, "PATITAS", sinPeso.FullName)
	assert.Equal(t, 0, sinPeso.Kilos)
}

func TestMatcher_BigDogConVarianteAportaKilosPorCantidad(t *testing.T) {
	m := catalog.NewMatcher([]catalog.Entry{catalog.NewEntry("BIG DOG", "15KG")})

	kilos, res := m.ItemKilos(item("BIG DOG (15kg) - POLLO", 3))

	require.True(t, res.Matched)
	assert.Equal(t, catalog.RulePartial, res.Rule)
	assert.Equal(t, "BIG DOG 15KG", res.Entry.FullName)
	assert.Equal(t, 45.0, kilos)
}

func TestMatcher_SinCoincidenciaNoAportaKilos(t *testing.T) {
	m := catalog.NewMatcher(testEntries())

	kilos, res := m.ItemKilos(item("Huesos"))

	assert.False(t, res.Matched)
	assert.Equal(t, catalog.RuleNone, res.Rule)
	assert.Equal(t, "Huesos", res.OriginalName)
	assert.Zero(t, kilos)
}

func TestMatcher_OrdenDeReglas(t *testing.T) {
	m := catalog.NewMatcher(testEntries())

	tests := []struct {
		name     string
		itemName string
		wantRule catalog.MatchRule
		wantFull string
	}{
		{"nombre completo exacto", "big dog 3kg", catalog.RuleExactFullName, "BIG DOG 3KG"},
		{"producto exacto sin peso", "PATITAS", catalog.RuleExactFullName, "PATITAS"},
		{"producto exacto con varios pesos toma el menor", "Big Dog", catalog.RuleExactProductName, "BIG DOG 3KG"},
		{"parcial prefiere el peso escrito", "BIG DOG (15KG) - CARNE", catalog.RulePartial, "BIG DOG 15KG"},
		{"parcial prefiere el producto más largo", "BIG DOG ADULTO", catalog.RulePartial, "BIG DOG 3KG"},
		{"parcial con peso de otro producto", "DOG (20 kg)", catalog.RulePartial, "DOG 20KG"},
		{"parcial con palabras desordenadas", "PESCADO PARA GATO 10KG", catalog.RulePartial, "GATO PESCADO 10KG"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := m.MatchName(tt.itemName)
			require.True(t, res.Matched)
			assert.Equal(t, tt.wantRule, res.Rule)
			assert.Equal(t, tt.wantFull, res.Entry.FullName)
		})
	}
}

func TestMatcher_Determinista(t *testing.T) {
	entries := testEntries()
	reversed := make([]catalog.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}
	a := catalog.NewMatcher(entries)
	b := catalog.NewMatcher(reversed)

	for _, name := range []string{"BIG DOG", "big dog adulto", "DOG", "gato", "HUESOS", "BIG DOG (15KG)"} {
		first := a.MatchName(name)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, a.MatchName(name), "llamadas repetidas: %s", name)
		}
		assert.Equal(t, first, b.MatchName(name), "orden del catálogo: %s", name)
	}
}

func TestMatcher_NombreVacioNoMatchea(t *testing.T) {
	m := catalog.NewMatcher(testEntries())
	assert.False(t, m.MatchName("   ").Matched)
}

func TestMatcher_ConservaIdentificadorDelItem(t *testing.T) {
	m := catalog.NewMatcher(testEntries())
	res := m.Match(entity.LineItem{ID: "it-1", Name: "PATITAS"})
	assert.Equal(t, "it-1", res.ItemID)
}

func TestBuildEntries_UltimaVersionYSoloActivos(t *testing.T) {
	prices := []entity.PricedProduct{
		{Product: "BIG DOG", Weight: "15KG", IsActive: true, Month: 1, Year: 2026},
		{Product: "big dog", Weight: "15kg", IsActive: true, Month: 3, Year: 2026},
		{Product: "BIG DOG", Weight: "15KG", IsActive: true, Month: 12, Year: 2025},
		{Product: "GATO", Weight: "7KG", IsActive: false, Month: 3, Year: 2026},
		{Product: "  ", Weight: "7KG", IsActive: true, Month: 3, Year: 2026},
	}

	entries := catalog.BuildEntries(prices)

	require.Len(t, entries, 1)
	assert.Equal(t, "BIG DOG 15KG", entries[0].FullName)
	assert.Equal(t, 15, entries[0].Kilos)
}
