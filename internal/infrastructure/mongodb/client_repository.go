package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo segmentación de clientes agregando la colección orders por cliente.
// Un cliente se identifica por su email o, si no tiene o está vacío, por su teléfono.
type ClientRepo struct {
	col *mongo.Collection
}

// NewClientRepository construye el adaptador de segmentación.
func NewClientRepository(db *mongo.Database) *ClientRepo {
	return &ClientRepo{col: db.Collection(ColOrders)}
}

type clientRow struct {
	Key         string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Phone       string    `bson:"phone"`
	LastOrderAt time.Time `bson:"lastOrderAt"`
}

// clientKey identifica al cliente por email; si falta o está vacío, por teléfono.
var clientKey = bson.M{"$cond": bson.A{
	bson.M{"$in": bson.A{"$customer.email", bson.A{nil, ""}}},
	"$customer.phone",
	"$customer.email",
}}

// clientPipeline agrupa pedidos por cliente; lastOrder filtra sobre la fecha del último pedido (nil = sin filtro).
func clientPipeline(lastOrder bson.M) []bson.M {
	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$ne": entity.OrderStatusCancelled}}},
		{"$sort": bson.M{"createdAt": 1}},
		{"$group": bson.M{
			"_id":         clientKey,
			"name":        bson.M{"$last": "$customer.name"},
			"email":       bson.M{"$last": "$customer.email"},
			"phone":       bson.M{"$last": "$customer.phone"},
			"lastOrderAt": bson.M{"$max": "$createdAt"},
		}},
		{"$match": bson.M{"_id": bson.M{"$nin": bson.A{nil, ""}}}},
	}
	if lastOrder != nil {
		pipeline = append(pipeline, bson.M{"$match": bson.M{"lastOrderAt": lastOrder}})
	}
	return append(pipeline, bson.M{"$sort": bson.M{"_id": 1}})
}

// ListAll todos los clientes con al menos un pedido no cancelado.
func (r *ClientRepo) ListAll(ctx context.Context) ([]entity.Recipient, error) {
	return r.aggregate(ctx, "mongo.Clients.ListAll", clientPipeline(nil))
}

// ListOrderedSince clientes con pedidos desde since.
func (r *ClientRepo) ListOrderedSince(ctx context.Context, since time.Time) ([]entity.Recipient, error) {
	return r.aggregate(ctx, "mongo.Clients.ListOrderedSince", clientPipeline(bson.M{"$gte": since}))
}

// ListLastOrderBefore clientes cuyo último pedido es anterior a before.
func (r *ClientRepo) ListLastOrderBefore(ctx context.Context, before time.Time) ([]entity.Recipient, error) {
	return r.aggregate(ctx, "mongo.Clients.ListLastOrderBefore", clientPipeline(bson.M{"$lt": before}))
}

func (r *ClientRepo) aggregate(ctx context.Context, op string, pipeline []bson.M) ([]entity.Recipient, error) {
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrap(op, err)
	}
	var rows []clientRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, wrap(op+": decode", err)
	}
	out := make([]entity.Recipient, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Recipient{Name: row.Name, Email: row.Email, Phone: row.Phone})
	}
	return out, nil
}
