package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeAnalyticsRepo struct {
	byType     []repository.MonthlyGroupResult
	byDelivery []repository.MonthlyGroupResult
	totals     map[time.Time]repository.PeriodTotals
	err        error
}

func (f *fakeAnalyticsRepo) MonthlyByOrderType(context.Context, time.Time, time.Time) ([]repository.MonthlyGroupResult, error) {
	return f.byType, f.err
}

func (f *fakeAnalyticsRepo) MonthlyByDeliveryType(context.Context, time.Time, time.Time) ([]repository.MonthlyGroupResult, error) {
	return f.byDelivery, nil
}

func (f *fakeAnalyticsRepo) Totals(_ context.Context, start, _ time.Time) (repository.PeriodTotals, error) {
	if f.err != nil {
		return repository.PeriodTotals{}, f.err
	}
	return f.totals[start], nil
}

type fakeOrderRepo struct {
	orders []entity.Order
	start  time.Time
	end    time.Time
}

func (f *fakeOrderRepo) ListWholesaleByOutlets(context.Context, []string) (map[string][]entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListByRange(_ context.Context, start, end time.Time) ([]entity.Order, error) {
	f.start, f.end = start, end
	return f.orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(context.Context, string, string) error     { return nil }
func (f *fakeOrderRepo) MarkContacted(context.Context, string, time.Time) error { return nil }

type fakeMatchers struct{ entries []catalog.Entry }

func (f fakeMatchers) WholesaleMatcher(context.Context) (*catalog.Matcher, error) {
	return catalog.NewMatcher(f.entries), nil
}

func fixedNow() time.Time { return time.Date(2026, time.March, 20, 15, 0, 0, 0, time.UTC) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary(t *testing.T) {
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{totals: map[time.Time]repository.PeriodTotals{
		march: {Revenue: dec("1500"), Orders: 12},
		feb:   {Revenue: dec("1000"), Orders: 16},
	}}
	uc := NewDashboardUseCase(repo, time.UTC)
	uc.now = fixedNow

	res, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, dec("1500").Equal(res.MonthRevenue))
	assert.Equal(t, 12, res.MonthOrders)
	assert.Equal(t, 16, res.PreviousMonthOrders)
	assert.True(t, dec("50").Equal(res.RevenueGrowthPct), res.RevenueGrowthPct.String())
	assert.True(t, dec("-25").Equal(res.OrdersGrowthPct), res.OrdersGrowthPct.String())
	assert.True(t, dec("125").Equal(res.AverageTicket))
	assert.Equal(t, "Marzo 2026", res.DateLabel)
}

func TestDashboardSummary_MesAnteriorVacio(t *testing.T) {
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{}, time.UTC)
	uc.now = fixedNow

	res, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, res.RevenueGrowthPct.IsZero())
	assert.True(t, res.AverageTicket.IsZero())
}

func TestDashboardSummary_Error(t *testing.T) {
	boom := errors.New("sin conexión")
	uc := NewDashboardUseCase(&fakeAnalyticsRepo{err: boom}, time.UTC)
	uc.now = fixedNow

	_, err := uc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte mensual
// ──────────────────────────────────────────────────────────────────────────────

func TestMonthlyReport_MesesVaciosEnCero(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		byType: []repository.MonthlyGroupResult{
			{Year: 2026, Month: 1, Key: "minorista", Revenue: dec("100.50"), Orders: 2},
			{Year: 2026, Month: 1, Key: "mayorista", Revenue: dec("900"), Orders: 1},
			{Year: 2026, Month: 3, Key: "sameDay", Revenue: dec("40"), Orders: 1},
		},
		byDelivery: []repository.MonthlyGroupResult{
			{Year: 2026, Month: 1, Key: "pickup", Revenue: dec("900"), Orders: 1},
			{Year: 2026, Month: 1, Key: "delivery", Revenue: dec("100.50"), Orders: 2},
			{Year: 2026, Month: 3, Key: "", Revenue: dec("40"), Orders: 1},
		},
	}
	uc := NewMonthlyUseCase(repo, time.UTC)
	uc.now = fixedNow

	res, err := uc.Report(context.Background(), dto.PeriodRequest{StartDate: "2026-01-01", EndDate: "2026-03-31"})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-01", res.StartDate)
	assert.Equal(t, "2026-03-31", res.EndDate)
	assert.True(t, dec("1040.5").Equal(res.TotalRevenue))
	assert.Equal(t, 4, res.TotalOrders)

	require.Len(t, res.Months, 3)
	jan, feb, mar := res.Months[0], res.Months[1], res.Months[2]
	assert.Equal(t, "Enero 2026", jan.Label)
	assert.True(t, dec("1000.5").Equal(jan.Revenue))
	assert.Equal(t, 3, jan.Orders)
	assert.Equal(t, "mayorista", jan.ByOrderType[0].Key)
	assert.Equal(t, "delivery", jan.ByDeliveryType[0].Key)

	assert.True(t, feb.Revenue.IsZero())
	assert.Zero(t, feb.Orders)
	assert.Empty(t, feb.ByOrderType)
	assert.NotNil(t, feb.ByOrderType)

	assert.Equal(t, "sin_dato", mar.ByDeliveryType[0].Key)
}

func TestMonthlyReport_RangoInvalido(t *testing.T) {
	uc := NewMonthlyUseCase(&fakeAnalyticsRepo{}, time.UTC)
	uc.now = fixedNow

	_, err := uc.Report(context.Background(), dto.PeriodRequest{StartDate: "2026-04-01", EndDate: "2026-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Report(context.Background(), dto.PeriodRequest{StartDate: "01/03/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ranking de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductsReport(t *testing.T) {
	orders := &fakeOrderRepo{orders: []entity.Order{
		{Items: []entity.LineItem{
			{Name: "BIG DOG (15kg) - POLLO", Options: []entity.ItemOption{{Quantity: 2}, {Quantity: 1}}},
			{Name: "Huesos"},
		}},
		{Items: []entity.LineItem{
			{Name: "big dog (15KG) - pollo", Options: []entity.ItemOption{{Quantity: 1}}},
			{Name: "big dog (15KG) - pollo", Options: []entity.ItemOption{{Quantity: 1}}},
			{Name: ""},
		}},
	}}
	uc := NewProductsUseCase(orders, fakeMatchers{entries: []catalog.Entry{catalog.NewEntry("BIG DOG", "15KG")}}, time.UTC)
	uc.now = fixedNow

	res, err := uc.Report(context.Background(), dto.PeriodRequest{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), orders.start)
	assert.Equal(t, time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC), orders.end)

	require.Len(t, res.Products, 2)
	top := res.Products[0]
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, "BIG DOG (15KG) - POLLO", top.Name)
	assert.True(t, top.Matched)
	assert.Equal(t, "BIG DOG 15KG", top.CatalogName)
	assert.Equal(t, 5, top.Units)
	assert.Equal(t, 75.0, top.Kilos)
	assert.Equal(t, 2, top.Orders)

	assert.Equal(t, "HUESOS", res.Products[1].Name)
	assert.Equal(t, 1, res.Products[1].Units)
	assert.Zero(t, res.Products[1].Kilos)

	assert.Equal(t, 6, res.TotalUnits)
	assert.Equal(t, 75.0, res.TotalKilos)
	assert.Equal(t, []string{"HUESOS"}, res.Unmatched)
}
