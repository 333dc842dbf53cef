package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// CatalogService lista y mantiene la lista de precios.
type CatalogService interface {
	List(ctx context.Context, priceType string) ([]dto.PriceResponse, error)
	SelectOptions(ctx context.Context, priceType string) ([]dto.SelectOptionDTO, error)
	Create(ctx context.Context, in dto.PriceRequest) (*dto.PriceResponse, error)
	Update(ctx context.Context, id string, in dto.PriceRequest) (*dto.PriceResponse, error)
}

// CatalogHandler maneja /api/catalog.
type CatalogHandler struct {
	uc  CatalogService
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Precios activos
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        price_type  query  string  true  "minorista | mayorista"
// @Success      200  {object}  dto.APIResponse{data=[]dto.PriceResponse}
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("price_type"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// SelectOptions godoc
// @Summary      Opciones para selectores de producto
// @Description  Una opción por producto, peso y variante, con etiqueta "PRODUCTO (PESO) - OPCIÓN".
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        price_type  query  string  true  "minorista | mayorista"
// @Success      200  {object}  dto.APIResponse{data=[]dto.SelectOptionDTO}
// @Router       /api/catalog/select-options [get]
func (h *CatalogHandler) SelectOptions(c *fiber.Ctx) error {
	out, err := h.uc.SelectOptions(c.Context(), c.Query("price_type"))
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// CreatePrice godoc
// @Summary      Alta de precio
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PriceRequest  true  "producto, peso, tipo y precio"
// @Success      201  {object}  dto.APIResponse{data=dto.PriceResponse}
// @Failure      400  {object}  dto.APIResponse
// @Failure      409  {object}  dto.APIResponse
// @Router       /api/catalog/prices [post]
func (h *CatalogHandler) CreatePrice(c *fiber.Ctx) error {
	var in dto.PriceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return created(c, out)
}

// UpdatePrice godoc
// @Summary      Modificar precio
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del precio"
// @Param        body  body  dto.PriceRequest  true  "producto, peso, tipo y precio"
// @Success      200  {object}  dto.APIResponse{data=dto.PriceResponse}
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/catalog/prices/{id} [put]
func (h *CatalogHandler) UpdatePrice(c *fiber.Ctx) error {
	var in dto.PriceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}
