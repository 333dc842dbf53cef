package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Petfood-admin/pkg/metrics"
)

// MetricsMiddleware cuenta requests por método, ruta registrada y código de respuesta.
// Usa el patrón de la ruta (/api/outlets/:id) para no abrir una serie por id.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		m.HTTPRequest(c.Method(), c.Route().Path, strconv.Itoa(status))
		return err
	}
}
