package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre la colección orders.
type OrderRepo struct {
	col *mongo.Collection
}

// NewOrderRepository construye el adaptador de pedidos.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{col: db.Collection(ColOrders)}
}

// wholesaleByOutletsFilter pedidos mayoristas de un conjunto de puntos de venta.
func wholesaleByOutletsFilter(outletIDs []string) bson.M {
	return bson.M{
		"orderType":    entity.OrderTypeMayorista,
		"puntoVentaId": bson.M{"$in": outletIDs},
	}
}

// ListWholesaleByOutlets resuelve todos los puntos de venta con una sola consulta ordenada por
// (puntoVentaId, createdAt) y agrupa en memoria.
func (r *OrderRepo) ListWholesaleByOutlets(ctx context.Context, outletIDs []string) (map[string][]entity.Order, error) {
	out := make(map[string][]entity.Order, len(outletIDs))
	if len(outletIDs) == 0 {
		return out, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "puntoVentaId", Value: 1}, {Key: "createdAt", Value: 1}}).
		SetProjection(bson.M{"createdAt": 1, "orderType": 1, "status": 1, "items": 1, "puntoVentaId": 1, "total": 1})

	cursor, err := r.col.Find(ctx, wholesaleByOutletsFilter(outletIDs), opts)
	if err != nil {
		return nil, wrap("mongo.Orders.ListWholesaleByOutlets", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, wrap("mongo.Orders.ListWholesaleByOutlets: decode", err)
		}
		out[doc.PuntoVentaID] = append(out[doc.PuntoVentaID], doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, wrap("mongo.Orders.ListWholesaleByOutlets", err)
	}
	return out, nil
}

// rangeFilter pedidos no cancelados creados en [start, end).
func rangeFilter(start, end time.Time) bson.M {
	return bson.M{
		"createdAt": bson.M{"$gte": start, "$lt": end},
		"status":    bson.M{"$ne": entity.OrderStatusCancelled},
	}
}

// ListByRange devuelve los pedidos no cancelados del rango, del más antiguo al más reciente.
func (r *OrderRepo) ListByRange(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.col.Find(ctx, rangeFilter(start, end), opts)
	if err != nil {
		return nil, wrap("mongo.Orders.ListByRange", err)
	}
	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrap("mongo.Orders.ListByRange: decode", err)
	}
	orders := make([]entity.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toEntity())
	}
	return orders, nil
}

// UpdateStatus cambia el estado del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.setFields(ctx, "mongo.Orders.UpdateStatus", id, bson.M{"status": status})
}

// MarkContacted registra contactedAt.
func (r *OrderRepo) MarkContacted(ctx context.Context, id string, at time.Time) error {
	return r.setFields(ctx, "mongo.Orders.MarkContacted", id, bson.M{"contactedAt": at})
}

func (r *OrderRepo) setFields(ctx context.Context, op, id string, fields bson.M) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return wrap(op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
