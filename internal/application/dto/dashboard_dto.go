package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Compara el mes en curso (hasta hoy) con el mes anterior completo.
type DashboardSummaryDTO struct {
	MonthRevenue         decimal.Decimal `json:"month_revenue"`
	MonthOrders          int             `json:"month_orders"`
	PreviousMonthRevenue decimal.Decimal `json:"previous_month_revenue"`
	PreviousMonthOrders  int             `json:"previous_month_orders"`
	RevenueGrowthPct     decimal.Decimal `json:"revenue_growth_pct"` // 0 si el mes anterior no tuvo ingresos
	OrdersGrowthPct      decimal.Decimal `json:"orders_growth_pct"`
	AverageTicket        decimal.Decimal `json:"average_ticket"`
	DateLabel            string          `json:"date_label"` // "Marzo 2026"
}
