package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// OrderRepository define el acceso a pedidos.
type OrderRepository interface {
	// ListWholesaleByOutlets devuelve los pedidos mayoristas de los puntos de venta indicados,
	// agrupados por punto de venta y ordenados del más antiguo al más reciente.
	// Los puntos de venta sin pedidos no aparecen en el mapa.
	ListWholesaleByOutlets(ctx context.Context, outletIDs []string) (map[string][]entity.Order, error)

	// ListByRange devuelve los pedidos no cancelados creados en [start, end).
	ListByRange(ctx context.Context, start, end time.Time) ([]entity.Order, error)

	// UpdateStatus cambia el estado de un pedido. ErrNotFound si no existe.
	UpdateStatus(ctx context.Context, id, status string) error

	// MarkContacted registra el momento en que se contactó al cliente. ErrNotFound si no existe.
	MarkContacted(ctx context.Context, id string, at time.Time) error
}

// ClientRepository segmentación de clientes a partir del historial de pedidos.
type ClientRepository interface {
	// ListAll devuelve todos los clientes que alguna vez hicieron un pedido.
	ListAll(ctx context.Context) ([]entity.Recipient, error)

	// ListOrderedSince devuelve los clientes con al menos un pedido desde since.
	ListOrderedSince(ctx context.Context, since time.Time) ([]entity.Recipient, error)

	// ListLastOrderBefore devuelve los clientes cuyo último pedido es anterior a before.
	ListLastOrderBefore(ctx context.Context, before time.Time) ([]entity.Recipient, error)
}
