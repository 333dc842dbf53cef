package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

var marzo = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestKey(t *testing.T) {
	assert.Equal(t, "mayorista|2026-03", Key(entity.PriceTypeMayorista, marzo))
}

func TestGetPut_DevuelveCopia(t *testing.T) {
	c, err := NewCatalogCache(4)
	require.NoError(t, err)

	c.Put(entity.PriceTypeMayorista, marzo, []entity.PricedProduct{{Product: "BIG DOG", Options: []string{"POLLO"}}})

	got, ok := c.Get(entity.PriceTypeMayorista, marzo)
	require.True(t, ok)
	got[0].Product = "MODIFICADO"
	got[0].Options[0] = "CARNE"

	again, _ := c.Get(entity.PriceTypeMayorista, marzo)
	assert.Equal(t, "BIG DOG", again[0].Product)
	assert.Equal(t, "POLLO", again[0].Options[0])
}

func TestInvalidatePriceType_SoloEseTipo(t *testing.T) {
	c, err := NewCatalogCache(8)
	require.NoError(t, err)
	abril := marzo.AddDate(0, 1, 0)

	c.Put(entity.PriceTypeMayorista, marzo, nil)
	c.Put(entity.PriceTypeMayorista, abril, nil)
	c.Put(entity.PriceTypeMinorista, marzo, nil)

	c.InvalidatePriceType(entity.PriceTypeMayorista)

	_, ok := c.Get(entity.PriceTypeMayorista, marzo)
	assert.False(t, ok)
	_, ok = c.Get(entity.PriceTypeMayorista, abril)
	assert.False(t, ok)
	_, ok = c.Get(entity.PriceTypeMinorista, marzo)
	assert.True(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestNewCatalogCache_TamañoInvalido(t *testing.T) {
	_, err := NewCatalogCache(0)
	assert.Error(t, err)
}
