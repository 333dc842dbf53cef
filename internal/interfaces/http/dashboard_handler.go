package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// DashboardService resumen del mes en curso.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  DashboardService
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary devuelve ingresos y pedidos del mes en curso contra el mes anterior.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (month_revenue, month_orders, previous_month_*,
// *_growth_pct, average_ticket, date_label).
// No requiere parámetros; las fechas se calculan en el servidor con APP_TIMEZONE.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, summary)
}
