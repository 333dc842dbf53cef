package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/period"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

// MatcherSource provee el matcher sobre el catálogo mayorista vigente.
type MatcherSource interface {
	WholesaleMatcher(ctx context.Context) (*catalog.Matcher, error)
}

// ProductsUseCase ranking de productos vendidos en un período.
type ProductsUseCase struct {
	orders   repository.OrderRepository
	matchers MatcherSource
	loc      *time.Location
	now      func() time.Time
}

// NewProductsUseCase construye el caso de uso.
func NewProductsUseCase(orders repository.OrderRepository, matchers MatcherSource, loc *time.Location) *ProductsUseCase {
	return &ProductsUseCase{orders: orders, matchers: matchers, loc: loc, now: time.Now}
}

// Report agrupa los ítems de los pedidos del rango por nombre normalizado: unidades (según las
// variantes compradas), kilos si el nombre coincide con el catálogo y cantidad de pedidos.
// Ordenado por unidades, de mayor a menor.
func (uc *ProductsUseCase) Report(ctx context.Context, req dto.PeriodRequest) (*dto.ProductsReportDTO, error) {
	rng, err := period.Parse(req.StartDate, req.EndDate, uc.now(), uc.loc)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.ListByRange(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("analytics: pedidos: %w", err)
	}
	m, err := uc.matchers.WholesaleMatcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: catálogo: %w", err)
	}

	byName := make(map[string]*dto.ProductRankDTO)
	for _, ord := range orders {
		seen := make(map[string]bool, len(ord.Items))
		for _, it := range ord.Items {
			name := catalog.Normalize(it.Name)
			if name == "" {
				continue
			}
			p, ok := byName[name]
			if !ok {
				p = &dto.ProductRankDTO{Name: name}
				byName[name] = p
			}
			kilos, res := m.ItemKilos(it)
			if res.Matched {
				p.Matched = true
				p.CatalogName = res.Entry.FullName
			}
			p.Units += catalog.TotalQuantity(it)
			p.Kilos += kilos
			if !seen[name] {
				seen[name] = true
				p.Orders++
			}
		}
	}

	report := &dto.ProductsReportDTO{
		StartDate: rng.StartLabel(),
		EndDate:   rng.EndLabel(),
		Products:  make([]dto.ProductRankDTO, 0, len(byName)),
		Unmatched: []string{},
	}
	for _, p := range byName {
		p.Kilos = math.Round(p.Kilos*100) / 100
		report.Products = append(report.Products, *p)
		report.TotalUnits += p.Units
		report.TotalKilos += p.Kilos
		if !p.Matched {
			report.Unmatched = append(report.Unmatched, p.Name)
		}
	}
	sort.Slice(report.Products, func(i, j int) bool {
		a, b := report.Products[i], report.Products[j]
		if a.Units != b.Units {
			return a.Units > b.Units
		}
		return a.Name < b.Name
	})
	for i := range report.Products {
		report.Products[i].Rank = i + 1
	}
	sort.Strings(report.Unmatched)
	report.TotalKilos = math.Round(report.TotalKilos*100) / 100
	return report, nil
}
