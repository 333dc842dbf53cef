package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// CampaignDispatcher ejecuta una pasada del despacho de campañas programadas.
type CampaignDispatcher interface {
	Run(ctx context.Context) (*dto.DispatchSummaryDTO, error)
}

// CampaignHandler endpoint invocado por el scheduler externo.
type CampaignHandler struct {
	uc  CampaignDispatcher
	log *logger.Logger
}

// NewCampaignHandler construye el handler.
func NewCampaignHandler(uc CampaignDispatcher, log *logger.Logger) *CampaignHandler {
	return &CampaignHandler{uc: uc, log: log}
}

// Dispatch godoc
// @Summary      Despachar campañas vencidas
// @Description  Evalúa cada campaña activa contra su expresión cron y envía las que correspondan.
// @Tags         cron
// @Produce      json
// @Param        X-Cron-Secret  header  string  true  "secreto del scheduler"
// @Success      200  {object}  dto.APIResponse{data=dto.DispatchSummaryDTO}
// @Failure      401  {object}  dto.APIResponse
// @Router       /api/cron/campaigns [post]
func (h *CampaignHandler) Dispatch(c *fiber.Ctx) error {
	summary, err := h.uc.Run(c.Context())
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, summary)
}
