package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// StatsService estadísticas mayoristas por punto de venta.
type StatsService interface {
	ComputeAll(ctx context.Context) (*dto.WholesaleStatsDTO, error)
	ComputeOne(ctx context.Context, outletID string) (*dto.OutletStatsDTO, error)
	UnmatchedAudit(ctx context.Context, limit int) ([]dto.UnmatchedItemDTO, error)
	RecomputeLedgers(ctx context.Context) (*dto.LedgerRecomputeDTO, error)
	StatsPDF(ctx context.Context) ([]byte, error)
	EmailSummary(ctx context.Context) (*dto.SummaryEmailDTO, error)
}

// ZoneService kilos por zona y por mes.
type ZoneService interface {
	CurrentMonthByZone(ctx context.Context) (*dto.ZoneReportDTO, error)
	MonthlyVolume(ctx context.Context, year int) (*dto.MonthlyVolumeDTO, error)
}

// WholesaleHandler reportes del canal mayorista.
type WholesaleHandler struct {
	stats StatsService
	zones ZoneService
	log   *logger.Logger
	now   func() time.Time
}

// NewWholesaleHandler construye el handler.
func NewWholesaleHandler(stats StatsService, zones ZoneService, log *logger.Logger) *WholesaleHandler {
	return &WholesaleHandler{stats: stats, zones: zones, log: log, now: time.Now}
}

// Stats godoc
// @Summary      Estadísticas de todos los puntos de venta activos
// @Description  Kilos totales, promedio por pedido, último pedido y frecuencia. Incluye los ítems sin coincidencia en el catálogo.
// @Tags         wholesale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.WholesaleStatsDTO}
// @Failure      500  {object}  dto.APIResponse
// @Router       /api/wholesale/stats [get]
func (h *WholesaleHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.ComputeAll(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// StatsPDF godoc
// @Summary      Estadísticas mayoristas en PDF
// @Tags         wholesale
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.APIResponse
// @Router       /api/wholesale/stats/pdf [get]
func (h *WholesaleHandler) StatsPDF(c *fiber.Ctx) error {
	pdf, err := h.stats.StatsPDF(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="estadisticas-mayoristas-%s.pdf"`, h.now().Format("2006-01-02")))
	return c.Send(pdf)
}

// EmailSummary godoc
// @Summary      Enviar resumen de estadísticas por email
// @Tags         wholesale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.SummaryEmailDTO}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/wholesale/stats/email [post]
func (h *WholesaleHandler) EmailSummary(c *fiber.Ctx) error {
	out, err := h.stats.EmailSummary(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// RecomputeLedger godoc
// @Summary      Recalcular el historial mensual de kilos
// @Description  Persiste los kilos mensuales calculados en cada punto de venta y registra la auditoría de ítems sin coincidencia.
// @Tags         wholesale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.LedgerRecomputeDTO}
// @Router       /api/wholesale/ledger/recompute [post]
func (h *WholesaleHandler) RecomputeLedger(c *fiber.Ctx) error {
	out, err := h.stats.RecomputeLedgers(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	h.log.Info().
		Int("outlets", out.Outlets).
		Int("entries", out.LedgerEntries).
		Str("by", GetEmail(c)).
		Msg("historial mensual recalculado")
	return ok(c, out)
}

// Unmatched godoc
// @Summary      Auditoría de ítems sin coincidencia
// @Tags         wholesale
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 50)"
// @Success      200  {object}  dto.APIResponse{data=[]dto.UnmatchedItemDTO}
// @Router       /api/wholesale/unmatched [get]
func (h *WholesaleHandler) Unmatched(c *fiber.Ctx) error {
	items, err := h.stats.UnmatchedAudit(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, items)
}

// Zones godoc
// @Summary      Kilos del mes actual por zona
// @Tags         wholesale
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=dto.ZoneReportDTO}
// @Router       /api/wholesale/zones [get]
func (h *WholesaleHandler) Zones(c *fiber.Ctx) error {
	out, err := h.zones.CurrentMonthByZone(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// Volume godoc
// @Summary      Kilos por mes del año
// @Tags         wholesale
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "año (default: actual)"
// @Success      200  {object}  dto.APIResponse{data=dto.MonthlyVolumeDTO}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/wholesale/volume [get]
func (h *WholesaleHandler) Volume(c *fiber.Ctx) error {
	var q struct {
		Year int `query:"year"`
	}
	if err := c.QueryParser(&q); err != nil {
		return invalidParams(c, "year debe ser numérico")
	}
	out, err := h.zones.MonthlyVolume(c.Context(), q.Year)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}
