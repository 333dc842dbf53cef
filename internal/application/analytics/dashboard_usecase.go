// Package analytics contiene los casos de uso de reportes de pedidos: reporte mensual,
// ranking de productos y el resumen del dashboard.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/period"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase compara el mes en curso con el mes anterior.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	loc           *time.Location
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. Los meses se calculan en loc.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, loc *time.Location) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, loc: loc, now: time.Now}
}

// Summary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. Totals(mes en curso)  → día 1 hasta el fin de hoy
//  2. Totals(mes anterior)  → mes calendario completo
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now().In(uc.loc)

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	monthStart := period.MonthStart(now)
	monthEnd := period.DayStart(now).AddDate(0, 0, 1)
	prevStart := monthStart.AddDate(0, -1, 0)

	// ── Goroutines para paralelizar las consultas ─────────────────────────────
	type totalsResult struct {
		totals repository.PeriodTotals
		err    error
	}
	currentCh := make(chan totalsResult, 1)
	previousCh := make(chan totalsResult, 1)

	go func() {
		t, err := uc.analyticsRepo.Totals(ctx, monthStart, monthEnd)
		currentCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.Totals(ctx, prevStart, monthStart)
		previousCh <- totalsResult{t, err}
	}()

	current := <-currentCh
	previous := <-previousCh

	if current.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", current.err)
	}
	if previous.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes anterior: %w", previous.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	averageTicket := decimal.Zero
	if current.totals.Orders > 0 {
		averageTicket = current.totals.Revenue.Div(decimal.NewFromInt(int64(current.totals.Orders))).Round(2)
	}

	return &dto.DashboardSummaryDTO{
		MonthRevenue:         current.totals.Revenue.Round(2),
		MonthOrders:          current.totals.Orders,
		PreviousMonthRevenue: previous.totals.Revenue.Round(2),
		PreviousMonthOrders:  previous.totals.Orders,
		RevenueGrowthPct:     growthPct(current.totals.Revenue, previous.totals.Revenue),
		OrdersGrowthPct: growthPct(
			decimal.NewFromInt(int64(current.totals.Orders)),
			decimal.NewFromInt(int64(previous.totals.Orders)),
		),
		AverageTicket: averageTicket,
		DateLabel:     period.MonthLabel(now.Month(), now.Year()),
	}, nil
}

// growthPct variación porcentual de prev a cur; 0 si prev no es positivo.
func growthPct(cur, prev decimal.Decimal) decimal.Decimal {
	if !prev.IsPositive() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(hundred).Round(2)
}
