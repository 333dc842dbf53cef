package catalog_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

func TestExtractKilos(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"15KG", 15},
		{"15kg", 15},
		{"3Kg", 3},
		{" 20KG ", 20},
		{"7 KG", 7},
		{"22KG BOLSA", 22},
		{"", 0},
		{"KG", 0},
		{"1.5KG", 0},
		{"500G", 0},
		{"BOLSA 15KG", 0},
		{"UNIDAD", 0},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ExtractKilos(tt.label))
		})
	}
}

// Se admiten blancos entre el número y la unidad: los pesos se cargan a mano como "15 KG".
func TestExtractKilos_BlancosAntesDeLaUnidad(t *testing.T) {
	for _, label := range []string{"15 KG", "15  kg", "15\tKg", "15KG"} {
		assert.Equal(t, 15, catalog.ExtractKilos(label), label)
	}
	assert.Equal(t, 0, catalog.ExtractKilos("15 K G"))
	assert.Equal(t, 0, catalog.ExtractKilos("15 - KG"))
}

func TestExtractKilos_CualquierEnteroConKG(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 15, 99, 1000} {
		for _, unit := range []string{"KG", "kg", "Kg", "kG"} {
			label := strconv.Itoa(n) + unit
			assert.Equal(t, n, catalog.ExtractKilos(label), label)
		}
	}
}

func TestTotalQuantity(t *testing.T) {
	t.Run("sin variantes cuenta 1", func(t *testing.T) {
		assert.Equal(t, 1, catalog.TotalQuantity(entity.LineItem{Name: "HUESOS"}))
	})
	t.Run("suma las variantes", func(t *testing.T) {
		item := entity.LineItem{Name: "BIG DOG", Options: []entity.ItemOption{
			{Name: "POLLO", Quantity: 3},
			{Name: "CARNE", Quantity: 2},
		}}
		assert.Equal(t, 5, catalog.TotalQuantity(item))
	})
	t.Run("cantidad ausente cuenta 0", func(t *testing.T) {
		item := entity.LineItem{Name: "BIG DOG", Options: []entity.ItemOption{
			{Name: "POLLO"},
			{Name: "CARNE", Quantity: 4},
		}}
		assert.Equal(t, 4, catalog.TotalQuantity(item))
	})
	t.Run("variantes todas sin cantidad", func(t *testing.T) {
		item := entity.LineItem{Name: "BIG DOG", Options: []entity.ItemOption{{Name: "POLLO"}}}
		assert.Equal(t, 0, catalog.TotalQuantity(item))
	})
}

func TestLineAmount(t *testing.T) {
	item := entity.LineItem{Name: "PALITOS", Options: []entity.ItemOption{
		{Name: "CARNE", Quantity: 2, Price: 1250.5},
		{Name: "POLLO", Quantity: 1, Price: 999.99},
		{Name: "CERDO", Price: 800},
	}}
	assert.Equal(t, "3500.99", catalog.LineAmount(item).StringFixed(2))
	assert.True(t, catalog.LineAmount(entity.LineItem{Name: "HUESOS"}).IsZero())
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "BIG DOG (15KG)", catalog.Normalize("  Big   dog (15kg) "))
	assert.Equal(t, "CAÑA ÑANDÚ", catalog.Normalize("caña\tñandú"))
	assert.Equal(t, "", catalog.Normalize("   "))
}
