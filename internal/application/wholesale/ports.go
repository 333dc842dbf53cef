// Package wholesale contiene los casos de uso del motor de estadísticas mayoristas:
// volumen y frecuencia por punto de venta, libro mensual de kilos, zonas y ABM de puntos de venta.
package wholesale

import (
	"context"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
)

// MatcherSource provee el matcher armado sobre el catálogo mayorista vigente.
type MatcherSource interface {
	WholesaleMatcher(ctx context.Context) (*catalog.Matcher, error)
}

// StatsPDFGenerator genera el PDF de la tabla de estadísticas por punto de venta.
type StatsPDFGenerator interface {
	GenerateStatsPDF(stats *dto.WholesaleStatsDTO) ([]byte, error)
}

// ReportConfig remitente y destinatarios del resumen por email.
type ReportConfig struct {
	From       string
	Recipients []string
}
