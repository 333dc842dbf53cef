package repository

import (
	"context"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// OutletRepository define el acceso a los puntos de venta mayoristas.
// Las búsquedas por ID devuelven domain.ErrNotFound cuando no hay documento.
type OutletRepository interface {
	Create(ctx context.Context, o *entity.Outlet) error
	GetByID(ctx context.Context, id string) (*entity.Outlet, error)
	ListActive(ctx context.Context) ([]*entity.Outlet, error)
	// Update actualiza los datos editables; no toca el libro de kilos.
	Update(ctx context.Context, o *entity.Outlet) error
	// Deactivate baja lógica (isActive=false).
	Deactivate(ctx context.Context, id string) error
	// ReplaceMonthlyKilos reemplaza el libro completo de kilos mensuales.
	ReplaceMonthlyKilos(ctx context.Context, id string, ledger []entity.MonthlyKilos) error
	// SetMonthlyKilos actualiza la entrada del mes/año indicado o la agrega si no existe.
	SetMonthlyKilos(ctx context.Context, id string, entry entity.MonthlyKilos) error
}
