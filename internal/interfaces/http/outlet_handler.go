package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// OutletService alta, baja y modificación de puntos de venta.
type OutletService interface {
	Create(ctx context.Context, in dto.CreateOutletRequest) (*dto.OutletResponse, error)
	Get(ctx context.Context, id string) (*dto.OutletResponse, error)
	ListActive(ctx context.Context) ([]dto.OutletResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateOutletRequest) (*dto.OutletResponse, error)
	Delete(ctx context.Context, id string) error
	SetMonthlyKilos(ctx context.Context, id string, in dto.SetMonthlyKilosRequest) (*dto.OutletResponse, error)
}

// OutletStatsService estadísticas de un punto de venta.
type OutletStatsService interface {
	ComputeOne(ctx context.Context, outletID string) (*dto.OutletStatsDTO, error)
}

// OutletHandler maneja /api/outlets.
type OutletHandler struct {
	uc    OutletService
	stats OutletStatsService
	log   *logger.Logger
}

// NewOutletHandler construye el handler.
func NewOutletHandler(uc OutletService, stats OutletStatsService, log *logger.Logger) *OutletHandler {
	return &OutletHandler{uc: uc, stats: stats, log: log}
}

// List godoc
// @Summary      Listar puntos de venta activos
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse{data=[]dto.OutletResponse}
// @Router       /api/outlets [get]
func (h *OutletHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// Create godoc
// @Summary      Crear punto de venta
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutletRequest  true  "datos del punto de venta"
// @Success      201  {object}  dto.APIResponse{data=dto.OutletResponse}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/outlets [post]
func (h *OutletHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return created(c, out)
}

// Get godoc
// @Summary      Obtener punto de venta
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del punto de venta"
// @Success      200  {object}  dto.APIResponse{data=dto.OutletResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/outlets/{id} [get]
func (h *OutletHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// Update godoc
// @Summary      Modificar punto de venta
// @Description  Solo se actualizan los campos presentes en el cuerpo.
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del punto de venta"
// @Param        body  body  dto.UpdateOutletRequest  true  "campos a modificar"
// @Success      200  {object}  dto.APIResponse{data=dto.OutletResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/outlets/{id} [put]
func (h *OutletHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// Delete godoc
// @Summary      Desactivar punto de venta
// @Tags         outlets
// @Security     Bearer
// @Param        id  path  string  true  "ID del punto de venta"
// @Success      204
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/outlets/{id} [delete]
func (h *OutletHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Stats godoc
// @Summary      Estadísticas de un punto de venta
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del punto de venta"
// @Success      200  {object}  dto.APIResponse{data=dto.OutletStatsDTO}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/outlets/{id}/stats [get]
func (h *OutletHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.ComputeOne(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// SetLedger godoc
// @Summary      Cargar kilos de un mes
// @Description  Reemplaza la entrada del mes si existe; si no, la agrega.
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del punto de venta"
// @Param        body  body  dto.SetMonthlyKilosRequest  true  "mes, año y kilos"
// @Success      200  {object}  dto.APIResponse{data=dto.OutletResponse}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/outlets/{id}/ledger [put]
func (h *OutletHandler) SetLedger(c *fiber.Ctx) error {
	var in dto.SetMonthlyKilosRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetMonthlyKilos(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}
