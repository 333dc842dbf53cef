package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// AuthService operaciones de usuarios que expone el handler.
type AuthService interface {
	RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error)
	Login(in dto.LoginRequest) (*dto.LoginResponse, error)
	ListUsers(page dto.PageRequest) ([]dto.UserResponse, error)
	SetStatus(id, status string) (*dto.UserResponse, error)
}

// AuthHandler maneja registro, login y administración de operadores.
type AuthHandler struct {
	uc  AuthService
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body  dto.RegisterRequest  true  "email, password, name, role"
// @Success      201   {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "email y password son requeridos")
	}
	if len(in.Password) < 8 {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "password debe tener al menos 8 caracteres")
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return created(c, user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      401   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
		}
		if errors.Is(err, domain.ErrForbidden) {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "cuenta inactiva")
		}
		return handleError(c, h.log, err)
	}
	return ok(c, out)
}

// ListUsers godoc
// @Summary      Listar operadores
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.APIResponse{data=[]dto.UserResponse}
// @Router       /api/auth/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidParams(c, "parámetros de paginación inválidos")
	}
	users, err := h.uc.ListUsers(page)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, users)
}

// UpdateUserStatus godoc
// @Summary      Activar o desactivar un operador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path  string                       true  "ID del usuario"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "active | inactive"
// @Success      200   {object}  dto.APIResponse{data=dto.UserResponse}
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/auth/users/{id}/status [patch]
func (h *AuthHandler) UpdateUserStatus(c *fiber.Ctx) error {
	if GetUserID(c) == c.Params("id") {
		return fail(c, fiber.StatusConflict, "CONFLICT", "no puede cambiar el estado de su propia cuenta")
	}
	var in dto.UpdateUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return handleError(c, h.log, err)
	}
	return ok(c, user)
}
