package repository

import (
	"context"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// PriceRepository define el acceso al catálogo de precios.
type PriceRepository interface {
	// ListActive devuelve las entradas activas del tipo de precio indicado,
	// de todas las vigencias (mes/año).
	ListActive(ctx context.Context, priceType string) ([]entity.PricedProduct, error)
	GetByID(ctx context.Context, id string) (*entity.PricedProduct, error)
	Create(ctx context.Context, p *entity.PricedProduct) error
	Update(ctx context.Context, p *entity.PricedProduct) error
}
