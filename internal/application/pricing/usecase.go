// Package pricing contiene los casos de uso del catálogo de precios: listado cacheado,
// menú de selección, altas/ediciones y el matcher mayorista que usan las estadísticas.
package pricing

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/period"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
	"github.com/jhoicas/Petfood-admin/pkg/metrics"
)

// Cache caché del catálogo por tipo de precio y mes de vigencia.
type Cache interface {
	Get(priceType string, period time.Time) ([]entity.PricedProduct, bool)
	Put(priceType string, period time.Time, prices []entity.PricedProduct)
	InvalidatePriceType(priceType string)
}

// CatalogUseCase casos de uso del catálogo de precios.
type CatalogUseCase struct {
	prices  repository.PriceRepository
	cache   Cache
	metrics *metrics.Metrics
	loc     *time.Location
	now     func() time.Time
}

// NewCatalogUseCase construye el caso de uso. m puede ser nil.
func NewCatalogUseCase(prices repository.PriceRepository, cache Cache, m *metrics.Metrics, loc *time.Location) *CatalogUseCase {
	return &CatalogUseCase{prices: prices, cache: cache, metrics: m, loc: loc, now: time.Now}
}

// WholesaleMatcher arma el matcher sobre el catálogo mayorista vigente.
func (uc *CatalogUseCase) WholesaleMatcher(ctx context.Context) (*catalog.Matcher, error) {
	prices, err := uc.activePrices(ctx, entity.PriceTypeMayorista)
	if err != nil {
		return nil, err
	}
	return catalog.NewMatcher(catalog.BuildEntries(prices)), nil
}

// List entradas activas del tipo de precio (todas las vigencias).
func (uc *CatalogUseCase) List(ctx context.Context, priceType string) ([]dto.PriceResponse, error) {
	if !validPriceType(priceType) {
		return nil, fmt.Errorf("%w: price_type debe ser minorista o mayorista", domain.ErrInvalidInput)
	}
	prices, err := uc.activePrices(ctx, priceType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceResponse, 0, len(prices))
	for i := range prices {
		out = append(out, toPriceResponse(&prices[i]))
	}
	return out, nil
}

// SelectOptions opciones del menú de selección: una por (producto, peso, variante) de la
// vigencia más reciente de cada producto, ordenadas por etiqueta.
func (uc *CatalogUseCase) SelectOptions(ctx context.Context, priceType string) ([]dto.SelectOptionDTO, error) {
	if !validPriceType(priceType) {
		return nil, fmt.Errorf("%w: price_type debe ser minorista o mayorista", domain.ErrInvalidInput)
	}
	prices, err := uc.activePrices(ctx, priceType)
	if err != nil {
		return nil, err
	}
	var out []dto.SelectOptionDTO
	for _, p := range latestVersions(prices) {
		options := p.Options
		if len(options) == 0 {
			options = []string{""}
		}
		for _, opt := range options {
			out = append(out, dto.SelectOptionDTO{
				Label:   catalog.BuildSelectLabel(p.Product, p.Weight, opt),
				Product: p.Product,
				Weight:  p.Weight,
				Option:  opt,
				Price:   p.Price,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out, nil
}

// Create da de alta una entrada de precio e invalida el caché de su tipo.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.PriceRequest) (*dto.PriceResponse, error) {
	if err := validatePrice(in); err != nil {
		return nil, err
	}
	p := &entity.PricedProduct{UpdatedAt: uc.now()}
	applyPrice(p, in)
	if err := uc.prices.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("pricing: crear precio: %w", err)
	}
	uc.cache.InvalidatePriceType(p.PriceType)
	resp := toPriceResponse(p)
	return &resp, nil
}

// Update reemplaza una entrada de precio. Si cambia el tipo de precio se invalidan ambos.
func (uc *CatalogUseCase) Update(ctx context.Context, id string, in dto.PriceRequest) (*dto.PriceResponse, error) {
	if err := validatePrice(in); err != nil {
		return nil, err
	}
	p, err := uc.prices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldType := p.PriceType
	applyPrice(p, in)
	p.UpdatedAt = uc.now()
	if err := uc.prices.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.cache.InvalidatePriceType(oldType)
	if p.PriceType != oldType {
		uc.cache.InvalidatePriceType(p.PriceType)
	}
	resp := toPriceResponse(p)
	return &resp, nil
}

func (uc *CatalogUseCase) activePrices(ctx context.Context, priceType string) ([]entity.PricedProduct, error) {
	key := period.MonthStart(uc.now().In(uc.loc))
	if cached, ok := uc.cache.Get(priceType, key); ok {
		uc.metrics.CatalogCache(true)
		return cached, nil
	}
	uc.metrics.CatalogCache(false)

	prices, err := uc.prices.ListActive(ctx, priceType)
	if err != nil {
		return nil, fmt.Errorf("pricing: catálogo %s: %w", priceType, err)
	}
	uc.cache.Put(priceType, key, prices)
	return prices, nil
}

// latestVersions una entrada por (producto, peso) normalizados: la de mes/año más reciente.
// Conserva el orden de primera aparición.
func latestVersions(prices []entity.PricedProduct) []entity.PricedProduct {
	idx := make(map[string]int, len(prices))
	var out []entity.PricedProduct
	for _, p := range prices {
		key := catalog.NewEntry(p.Product, p.Weight).FullName
		i, ok := idx[key]
		if !ok {
			idx[key] = len(out)
			out = append(out, p)
			continue
		}
		if p.Year*12+p.Month > out[i].Year*12+out[i].Month {
			out[i] = p
		}
	}
	return out
}

func validPriceType(t string) bool {
	return t == entity.PriceTypeMayorista || t == entity.PriceTypeMinorista
}

func validatePrice(in dto.PriceRequest) error {
	switch {
	case strings.TrimSpace(in.Product) == "":
		return fmt.Errorf("%w: product es obligatorio", domain.ErrInvalidInput)
	case !validPriceType(in.PriceType):
		return fmt.Errorf("%w: price_type debe ser minorista o mayorista", domain.ErrInvalidInput)
	case in.Month < 1 || in.Month > 12:
		return fmt.Errorf("%w: month debe estar entre 1 y 12", domain.ErrInvalidInput)
	case in.Year < 2000:
		return fmt.Errorf("%w: year inválido", domain.ErrInvalidInput)
	case in.Price.IsNegative():
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	case !catalog.ValidLabelPart(in.Product) || !catalog.ValidLabelPart(in.Weight):
		return fmt.Errorf("%w: product y weight no admiten paréntesis ni \" - \"", domain.ErrInvalidInput)
	}
	for _, opt := range in.Options {
		if !catalog.ValidLabelPart(opt) {
			return fmt.Errorf("%w: la opción %q no admite paréntesis ni \" - \"", domain.ErrInvalidInput, opt)
		}
	}
	return nil
}

func applyPrice(p *entity.PricedProduct, in dto.PriceRequest) {
	p.Section = strings.TrimSpace(in.Section)
	p.Product = strings.TrimSpace(in.Product)
	p.Weight = strings.TrimSpace(in.Weight)
	p.PriceType = in.PriceType
	p.Price = in.Price
	p.IsActive = in.IsActive == nil || *in.IsActive
	p.Month = in.Month
	p.Year = in.Year
	p.Options = in.Options
}

func toPriceResponse(p *entity.PricedProduct) dto.PriceResponse {
	options := p.Options
	if options == nil {
		options = []string{}
	}
	return dto.PriceResponse{
		ID:        p.ID,
		Section:   p.Section,
		Product:   p.Product,
		Weight:    p.Weight,
		Kilos:     catalog.ExtractKilos(p.Weight),
		PriceType: p.PriceType,
		Price:     p.Price,
		IsActive:  p.IsActive,
		Month:     p.Month,
		Year:      p.Year,
		Options:   options,
		UpdatedAt: p.UpdatedAt,
	}
}
