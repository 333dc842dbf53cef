package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Estadísticas por punto de venta ───────────────────────────────────────────

// OutletStatsDTO estadísticas de volumen y frecuencia de compra de un punto de venta.
type OutletStatsDTO struct {
	OutletID       string             `json:"outlet_id"`
	OutletName     string             `json:"outlet_name"`
	Zone           string             `json:"zone"`
	TotalKilos     int                `json:"total_kilos"`      // redondeado una sola vez, al final
	AverageKilos   float64            `json:"average_kilos"`    // por pedido, 2 decimales
	LastOrderKilos float64            `json:"last_order_kilos"` // kilos del pedido más reciente
	OrderCount     int                `json:"order_count"`
	FirstOrderAt   *time.Time         `json:"first_order_at,omitempty"`
	LastOrderAt    *time.Time         `json:"last_order_at,omitempty"`
	Frequency      FrequencyDTO       `json:"frequency"`
	Unmatched      []UnmatchedNameDTO `json:"unmatched,omitempty"`
}

// FrequencyDTO clasificación de frecuencia de compra.
type FrequencyDTO struct {
	Kind  string `json:"kind"` // no_orders | single_order | same_day | every_n_days
	Days  int    `json:"days,omitempty"`
	Label string `json:"label"`
}

// UnmatchedNameDTO ítem sin match en el catálogo y cuántas veces apareció.
type UnmatchedNameDTO struct {
	Name        string `json:"name"`
	Occurrences int    `json:"occurrences"`
}

// WholesaleStatsDTO respuesta de GET /api/wholesale/stats.
type WholesaleStatsDTO struct {
	GeneratedAt time.Time          `json:"generated_at"`
	TotalKilos  int                `json:"total_kilos"`
	Outlets     []OutletStatsDTO   `json:"outlets"`
	Unmatched   []UnmatchedNameDTO `json:"unmatched"` // consolidado de todos los puntos de venta
}

// LedgerRecomputeDTO resultado de POST /api/wholesale/ledger/recompute.
type LedgerRecomputeDTO struct {
	Outlets        int `json:"outlets"`
	LedgerEntries  int `json:"ledger_entries"`
	UnmatchedNames int `json:"unmatched_names"`
}

// SummaryEmailDTO resultado del envío del resumen por email.
type SummaryEmailDTO struct {
	Recipients int `json:"recipients"`
}

// UnmatchedItemDTO fila de la auditoría de ítems sin match.
type UnmatchedItemDTO struct {
	NormalizedName string          `json:"normalized_name"`
	SampleName     string          `json:"sample_name"`
	Occurrences    int             `json:"occurrences"`
	Amount         decimal.Decimal `json:"amount"`
	LastSeenAt     time.Time       `json:"last_seen_at"`
}

// ── Zonas y meses ─────────────────────────────────────────────────────────────

// ZoneVolumeDTO volumen del mes en curso de una zona.
type ZoneVolumeDTO struct {
	Zone              string  `json:"zone"`
	TotalKilos        float64 `json:"total_kilos"`
	Outlets           int     `json:"outlets"`
	OutletsWithVolume int     `json:"outlets_with_volume"`
}

// ZoneReportDTO respuesta de GET /api/wholesale/zones.
type ZoneReportDTO struct {
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	Label      string          `json:"label"` // "Marzo 2026"
	TotalKilos float64         `json:"total_kilos"`
	Zones      []ZoneVolumeDTO `json:"zones"`
}

// MonthVolumeDTO kilos del libro mensual sumados sobre todos los puntos de venta.
type MonthVolumeDTO struct {
	Month   int     `json:"month"`
	Label   string  `json:"label"`
	Kilos   float64 `json:"kilos"`
	Outlets int     `json:"outlets"` // puntos de venta con entrada ese mes
}

// MonthlyVolumeDTO respuesta de GET /api/wholesale/volume.
type MonthlyVolumeDTO struct {
	Year       int              `json:"year"`
	TotalKilos float64          `json:"total_kilos"`
	Months     []MonthVolumeDTO `json:"months"`
}
