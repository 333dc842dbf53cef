package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyGroupResult fila cruda de un agrupamiento mensual de pedidos.
// Key es el valor del campo agrupado (tipo de pedido o modalidad de entrega).
type MonthlyGroupResult struct {
	Year    int
	Month   int
	Key     string
	Revenue decimal.Decimal
	Orders  int
}

// PeriodTotals ingresos y cantidad de pedidos de un período.
type PeriodTotals struct {
	Revenue decimal.Decimal
	Orders  int
}

// AnalyticsRepository define las consultas agregadas de lectura sobre pedidos.
// Las implementaciones son read-only y excluyen los pedidos cancelados.
type AnalyticsRepository interface {
	// MonthlyByOrderType agrupa por (año, mes, tipo de pedido) los pedidos creados en [start, end).
	MonthlyByOrderType(ctx context.Context, start, end time.Time) ([]MonthlyGroupResult, error)

	// MonthlyByDeliveryType agrupa por (año, mes, modalidad de entrega) los pedidos creados en [start, end).
	MonthlyByDeliveryType(ctx context.Context, start, end time.Time) ([]MonthlyGroupResult, error)

	// Totals devuelve ingresos y cantidad de pedidos en [start, end). Cero si no hay pedidos.
	Totals(ctx context.Context, start, end time.Time) (PeriodTotals, error)
}
