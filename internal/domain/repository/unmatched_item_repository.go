package repository

import (
	"context"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// UnmatchedItemRepository auditoría de nombres de ítems que no coinciden con el catálogo.
type UnmatchedItemRepository interface {
	// Upsert suma las ocurrencias de cada nombre y actualiza la última vez visto.
	Upsert(ctx context.Context, items []entity.UnmatchedItem) error
	// List devuelve los nombres auditados, los más frecuentes primero.
	List(ctx context.Context, limit int) ([]entity.UnmatchedItem, error)
}
