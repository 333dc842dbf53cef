package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Petfood-admin/pkg/config"
)

// Colecciones del almacén documental.
const (
	ColOrders    = "orders"
	ColPrices    = "prices"
	ColOutlets   = "puntos_venta"
	ColCampaigns = "scheduledCampaigns"
)

// Connect abre el cliente MongoDB, verifica la conexión y devuelve la base configurada.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(50).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea (si faltan) los índices que usan las consultas de reportes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		ColOrders: {
			{Keys: bson.D{{Key: "puntoVentaId", Value: 1}, {Key: "createdAt", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
			{Keys: bson.D{{Key: "customer.email", Value: 1}}},
		},
		ColPrices: {
			{Keys: bson.D{{Key: "priceType", Value: 1}, {Key: "isActive", Value: 1}}},
		},
		ColOutlets: {
			{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "zone", Value: 1}}},
		},
		ColCampaigns: {
			{Keys: bson.D{{Key: "isActive", Value: 1}}},
		},
	}
	for col, models := range indexes {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo índices %s: %w", col, err)
		}
	}
	return nil
}
