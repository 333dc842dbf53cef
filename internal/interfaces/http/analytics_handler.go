package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// MonthlyReporter ingresos mensuales por tipo de pedido y de entrega.
type MonthlyReporter interface {
	Report(ctx context.Context, req dto.PeriodRequest) (*dto.MonthlyReportDTO, error)
}

// ProductsReporter ranking de productos vendidos.
type ProductsReporter interface {
	Report(ctx context.Context, req dto.PeriodRequest) (*dto.ProductsReportDTO, error)
}

// AnalyticsHandler maneja los endpoints de analítica de ventas.
type AnalyticsHandler struct {
	monthly  MonthlyReporter
	products ProductsReporter
	log      *logger.Logger
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(monthly MonthlyReporter, products ProductsReporter, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{monthly: monthly, products: products, log: log}
}

// Monthly godoc
// @Summary      Ingresos y pedidos por mes
// @Description  Desglose por tipo de pedido y tipo de entrega. Los meses sin pedidos aparecen en cero.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.APIResponse{data=dto.MonthlyReportDTO}
// @Failure      400  {object}  dto.APIResponse
// @Failure      500  {object}  dto.APIResponse
// @Router       /api/analytics/monthly [get]
func (h *AnalyticsHandler) Monthly(c *fiber.Ctx) error {
	var req dto.PeriodRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c, "parámetros de consulta inválidos")
	}
	report, err := h.monthly.Report(c.Context(), req)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, report)
}

// Products godoc
// @Summary      Ranking de productos vendidos
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.APIResponse{data=dto.ProductsReportDTO}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/analytics/products [get]
func (h *AnalyticsHandler) Products(c *fiber.Ctx) error {
	var req dto.PeriodRequest
	if err := c.QueryParser(&req); err != nil {
		return invalidParams(c, "parámetros de consulta inválidos")
	}
	report, err := h.products.Report(c.Context(), req)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, report)
}
