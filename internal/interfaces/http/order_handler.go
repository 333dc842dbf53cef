package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// OrderService cambios de estado de pedidos.
type OrderService interface {
	UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderUpdateResponse, error)
	MarkContacted(ctx context.Context, id string) (*dto.OrderUpdateResponse, error)
}

// OrderHandler maneja /api/orders.
type OrderHandler struct {
	uc  OrderService
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "nuevo estado"
// @Success      200  {object}  dto.APIResponse{data=dto.OrderUpdateResponse}
// @Failure      400  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// MarkContacted godoc
// @Summary      Registrar contacto con el cliente
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.APIResponse{data=dto.OrderUpdateResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/orders/{id}/contacted [post]
func (h *OrderHandler) MarkContacted(c *fiber.Ctx) error {
	out, err := h.uc.MarkContacted(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}
