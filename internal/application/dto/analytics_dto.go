package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// PeriodRequest parámetros de rango de los reportes.
type PeriodRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; por defecto hoy (inclusive)
}

// ── Reporte mensual ───────────────────────────────────────────────────────────

// BreakdownDTO ingresos y cantidad de pedidos de un grupo (tipo de pedido o entrega).
type BreakdownDTO struct {
	Key     string          `json:"key"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// MonthlyRowDTO una fila por mes calendario del rango, también para meses sin pedidos.
type MonthlyRowDTO struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	Label          string          `json:"label"`
	Revenue        decimal.Decimal `json:"revenue"`
	Orders         int             `json:"orders"`
	ByOrderType    []BreakdownDTO  `json:"by_order_type"`
	ByDeliveryType []BreakdownDTO  `json:"by_delivery_type"`
}

// MonthlyReportDTO respuesta de GET /api/analytics/monthly.
type MonthlyReportDTO struct {
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalOrders  int             `json:"total_orders"`
	Months       []MonthlyRowDTO `json:"months"`
}

// ── Reporte de productos ──────────────────────────────────────────────────────

// ProductRankDTO unidades vendidas de un nombre de ítem y kilos si matchea el catálogo.
type ProductRankDTO struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`    // nombre normalizado
	Matched     bool    `json:"matched"` // coincide con el catálogo mayorista
	CatalogName string  `json:"catalog_name,omitempty"`
	Units       int     `json:"units"`
	Kilos       float64 `json:"kilos"`
	Orders      int     `json:"orders"` // pedidos que incluyen el ítem
}

// ProductsReportDTO respuesta de GET /api/analytics/products.
type ProductsReportDTO struct {
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	TotalUnits int              `json:"total_units"`
	TotalKilos float64          `json:"total_kilos"`
	Products   []ProductRankDTO `json:"products"`
	Unmatched  []string         `json:"unmatched"`
}
