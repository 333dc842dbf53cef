package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// CampaignRepository define el acceso a las campañas programadas.
type CampaignRepository interface {
	ListActive(ctx context.Context) ([]entity.Campaign, error)
	// MarkRun registra la última ejecución de la campaña.
	MarkRun(ctx context.Context, id string, at time.Time) error
}
