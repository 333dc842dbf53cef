package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var _ repository.OutletRepository = (*OutletRepo)(nil)

// OutletRepo puntos de venta mayoristas sobre la colección puntos_venta.
// Todas las escrituras son updates atómicos de un solo documento.
type OutletRepo struct {
	col *mongo.Collection
	now func() time.Time
}

// NewOutletRepository construye el adaptador de puntos de venta.
func NewOutletRepository(db *mongo.Database) *OutletRepo {
	return &OutletRepo{col: db.Collection(ColOutlets), now: time.Now}
}

// Create inserta el punto de venta y completa o.ID.
func (r *OutletRepo) Create(ctx context.Context, o *entity.Outlet) error {
	res, err := r.col.InsertOne(ctx, outletDocFrom(o))
	if err != nil {
		return wrap("mongo.Outlets.Create", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid.Hex()
	}
	return nil
}

// GetByID obtiene un punto de venta (activo o no).
func (r *OutletRepo) GetByID(ctx context.Context, id string) (*entity.Outlet, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc outletDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, wrap("mongo.Outlets.GetByID", err)
	}
	return doc.toEntity(), nil
}

// ListActive puntos de venta activos ordenados por zona y nombre.
func (r *OutletRepo) ListActive(ctx context.Context) ([]*entity.Outlet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "zone", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, wrap("mongo.Outlets.ListActive", err)
	}
	var docs []outletDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, wrap("mongo.Outlets.ListActive: decode", err)
	}
	out := make([]*entity.Outlet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// Update actualiza los datos editables sin tocar kilosMensuales.
func (r *OutletRepo) Update(ctx context.Context, o *entity.Outlet) error {
	d := outletDocFrom(o)
	return r.update(ctx, "mongo.Outlets.Update", o.ID, bson.M{"$set": bson.M{
		"name":            d.Name,
		"zone":            d.Zone,
		"frequency":       d.Frequency,
		"freezerCapacity": d.FreezerCapacity,
		"contact":         d.Contact,
		"isActive":        d.IsActive,
		"updatedAt":       r.now(),
	}})
}

// Deactivate baja lógica.
func (r *OutletRepo) Deactivate(ctx context.Context, id string) error {
	return r.update(ctx, "mongo.Outlets.Deactivate", id, bson.M{"$set": bson.M{"isActive": false, "updatedAt": r.now()}})
}

// ReplaceMonthlyKilos reemplaza el libro completo; el llamador garantiza una entrada por mes/año.
func (r *OutletRepo) ReplaceMonthlyKilos(ctx context.Context, id string, ledger []entity.MonthlyKilos) error {
	return r.update(ctx, "mongo.Outlets.ReplaceMonthlyKilos", id, bson.M{"$set": bson.M{
		"kilosMensuales": ledgerDocs(ledger),
		"updatedAt":      r.now(),
	}})
}

// SetMonthlyKilos actualiza la entrada del mes/año o la agrega. El $push solo aplica si la entrada
// todavía no existe, así dos escrituras concurrentes no duplican el mes.
func (r *OutletRepo) SetMonthlyKilos(ctx context.Context, id string, entry entity.MonthlyKilos) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	period := bson.M{"month": entry.Month, "year": entry.Year}

	for attempt := 0; attempt < 2; attempt++ {
		res, err := r.col.UpdateOne(ctx,
			bson.M{"_id": oid, "kilosMensuales": bson.M{"$elemMatch": period}},
			bson.M{"$set": bson.M{"kilosMensuales.$.kilos": entry.Kilos, "updatedAt": r.now()}},
		)
		if err != nil {
			return wrap("mongo.Outlets.SetMonthlyKilos", err)
		}
		if res.MatchedCount > 0 {
			return nil
		}

		res, err = r.col.UpdateOne(ctx,
			bson.M{"_id": oid, "kilosMensuales": bson.M{"$not": bson.M{"$elemMatch": period}}},
			bson.M{
				"$push": bson.M{"kilosMensuales": monthlyKilosDoc{Month: entry.Month, Year: entry.Year, Kilos: entry.Kilos}},
				"$set":  bson.M{"updatedAt": r.now()},
			},
		)
		if err != nil {
			return wrap("mongo.Outlets.SetMonthlyKilos", err)
		}
		if res.MatchedCount > 0 {
			return nil
		}
		// Otro escritor agregó la entrada entre los dos updates: reintentar el $set.
	}
	return domain.ErrNotFound
}

func (r *OutletRepo) update(ctx context.Context, op, id string, update bson.M) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return wrap(op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
