package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/period"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

// MonthlyUseCase reporte mensual de ingresos y pedidos por tipo de pedido y modalidad de entrega.
type MonthlyUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	loc           *time.Location
	now           func() time.Time
}

// NewMonthlyUseCase construye el caso de uso.
func NewMonthlyUseCase(analyticsRepo repository.AnalyticsRepository, loc *time.Location) *MonthlyUseCase {
	return &MonthlyUseCase{analyticsRepo: analyticsRepo, loc: loc, now: time.Now}
}

// Report devuelve una fila por mes calendario del rango; los meses sin pedidos van en cero.
// Los totales del mes salen del agrupamiento por tipo de pedido.
func (uc *MonthlyUseCase) Report(ctx context.Context, req dto.PeriodRequest) (*dto.MonthlyReportDTO, error) {
	rng, err := period.Parse(req.StartDate, req.EndDate, uc.now(), uc.loc)
	if err != nil {
		return nil, err
	}

	type groupResult struct {
		rows []repository.MonthlyGroupResult
		err  error
	}
	byTypeCh := make(chan groupResult, 1)
	byDeliveryCh := make(chan groupResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.MonthlyByOrderType(ctx, rng.Start, rng.End)
		byTypeCh <- groupResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.MonthlyByDeliveryType(ctx, rng.Start, rng.End)
		byDeliveryCh <- groupResult{rows, err}
	}()

	byType := <-byTypeCh
	byDelivery := <-byDeliveryCh
	if byType.err != nil {
		return nil, fmt.Errorf("analytics: por tipo de pedido: %w", byType.err)
	}
	if byDelivery.err != nil {
		return nil, fmt.Errorf("analytics: por modalidad de entrega: %w", byDelivery.err)
	}

	months := rng.Months()
	index := make(map[int]int, len(months))
	rows := make([]dto.MonthlyRowDTO, len(months))
	for i, m := range months {
		index[monthKey(m.Year(), int(m.Month()))] = i
		rows[i] = dto.MonthlyRowDTO{
			Year:           m.Year(),
			Month:          int(m.Month()),
			Label:          period.MonthLabel(m.Month(), m.Year()),
			Revenue:        decimal.Zero,
			ByOrderType:    []dto.BreakdownDTO{},
			ByDeliveryType: []dto.BreakdownDTO{},
		}
	}

	report := &dto.MonthlyReportDTO{
		StartDate:    rng.StartLabel(),
		EndDate:      rng.EndLabel(),
		TotalRevenue: decimal.Zero,
	}
	for _, r := range byType.rows {
		i, ok := index[monthKey(r.Year, r.Month)]
		if !ok {
			continue
		}
		rows[i].Revenue = rows[i].Revenue.Add(r.Revenue)
		rows[i].Orders += r.Orders
		rows[i].ByOrderType = append(rows[i].ByOrderType, breakdown(r))
		report.TotalRevenue = report.TotalRevenue.Add(r.Revenue)
		report.TotalOrders += r.Orders
	}
	for _, r := range byDelivery.rows {
		if i, ok := index[monthKey(r.Year, r.Month)]; ok {
			rows[i].ByDeliveryType = append(rows[i].ByDeliveryType, breakdown(r))
		}
	}

	for i := range rows {
		rows[i].Revenue = rows[i].Revenue.Round(2)
		sortBreakdown(rows[i].ByOrderType)
		sortBreakdown(rows[i].ByDeliveryType)
	}
	report.TotalRevenue = report.TotalRevenue.Round(2)
	report.Months = rows
	return report, nil
}

func monthKey(year, month int) int { return year*12 + month - 1 }

func breakdown(r repository.MonthlyGroupResult) dto.BreakdownDTO {
	key := r.Key
	if key == "" {
		key = "sin_dato"
	}
	return dto.BreakdownDTO{Key: key, Revenue: r.Revenue.Round(2), Orders: r.Orders}
}

func sortBreakdown(b []dto.BreakdownDTO) {
	sort.Slice(b, func(i, j int) bool { return b[i].Key < b[j].Key })
}
