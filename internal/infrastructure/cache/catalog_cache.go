package cache

import (
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// CatalogCache caché de proceso del catálogo de precios, por tipo de precio y mes de vigencia.
// Se invalida explícitamente en cada escritura del catálogo.
type CatalogCache struct {
	lru *lru.Cache[string, []entity.PricedProduct]
}

// NewCatalogCache construye el caché con capacidad para size claves.
func NewCatalogCache(size int) (*CatalogCache, error) {
	c, err := lru.New[string, []entity.PricedProduct](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &CatalogCache{lru: c}, nil
}

// Key "mayorista|2026-03".
func Key(priceType string, period time.Time) string {
	return priceType + "|" + period.Format("2006-01")
}

// Get devuelve una copia del catálogo guardado.
func (c *CatalogCache) Get(priceType string, period time.Time) ([]entity.PricedProduct, bool) {
	v, ok := c.lru.Get(Key(priceType, period))
	if !ok {
		return nil, false
	}
	return clone(v), true
}

// Put guarda una copia del catálogo.
func (c *CatalogCache) Put(priceType string, period time.Time, prices []entity.PricedProduct) {
	c.lru.Add(Key(priceType, period), clone(prices))
}

// InvalidatePriceType elimina todas las vigencias cacheadas del tipo de precio.
func (c *CatalogCache) InvalidatePriceType(priceType string) {
	prefix := priceType + "|"
	for _, k := range c.lru.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.lru.Remove(k)
		}
	}
}

// Len cantidad de claves cacheadas.
func (c *CatalogCache) Len() int { return c.lru.Len() }

func clone(in []entity.PricedProduct) []entity.PricedProduct {
	out := make([]entity.PricedProduct, len(in))
	copy(out, in)
	for i := range out {
		if in[i].Options != nil {
			out[i].Options = append([]string(nil), in[i].Options...)
		}
	}
	return out
}
