package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo catálogo de precios sobre la colección prices.
type PriceRepo struct {
	col *mongo.Collection
}

// NewPriceRepository construye el adaptador de precios.
func NewPriceRepository(db *mongo.Database) *PriceRepo {
	return &PriceRepo{col: db.Collection(ColPrices)}
}

// ListActive entradas activas del tipo de precio, de la vigencia más reciente a la más antigua.
func (r *PriceRepo) ListActive(ctx context.Context, priceType string) ([]entity.PricedProduct, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "section", Value: 1},
		{Key: "product", Value: 1},
		{Key: "weight", Value: 1},
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
	})
	cursor, err := r.col.Find(ctx, bson.M{"priceType": priceType, "isActive": true}, opts)
	if err != nil {
		return nil, wrap("mongo.Prices.ListActive", err)
	}
	var docs []priceDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrap("mongo.Prices.ListActive: decode", err)
	}
	out := make([]entity.PricedProduct, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// GetByID obtiene una entrada de precio.
func (r *PriceRepo) GetByID(ctx context.Context, id string) (*entity.PricedProduct, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc priceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, wrap("mongo.Prices.GetByID", err)
	}
	p := doc.toEntity()
	return &p, nil
}

// Create inserta una entrada y completa p.ID.
func (r *PriceRepo) Create(ctx context.Context, p *entity.PricedProduct) error {
	res, err := r.col.InsertOne(ctx, priceDocFrom(p))
	if err != nil {
		return wrap("mongo.Prices.Create", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

// Update reemplaza los campos editables de la entrada.
func (r *PriceRepo) Update(ctx context.Context, p *entity.PricedProduct) error {
	oid, err := objectID(p.ID)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": priceDocFrom(p)})
	if err != nil {
		return wrap("mongo.Prices.Update", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
