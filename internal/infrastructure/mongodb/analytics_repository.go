package mongodb

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre orders.
// Los meses se calculan en la zona horaria del negocio, no en UTC.
type AnalyticsRepo struct {
	col      *mongo.Collection
	timezone string
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db *mongo.Database, timezone string) *AnalyticsRepo {
	return &AnalyticsRepo{col: db.Collection(ColOrders), timezone: timezone}
}

type monthlyRow struct {
	ID struct {
		Year  int    `bson:"year"`
		Month int    `bson:"month"`
		Key   string `bson:"key"`
	} `bson:"_id"`
	Revenue primitive.Decimal128 `bson:"revenue"`
	Orders  int                  `bson:"orders"`
}

// monthlyPipeline agrupa por (año, mes, field) los pedidos no cancelados de [start, end).
// El total se suma como Decimal128 para no acumular error de punto flotante.
func monthlyPipeline(start, end time.Time, field, timezone string) []bson.M {
	date := func(op string) bson.M {
		return bson.M{op: bson.M{"date": "$createdAt", "timezone": timezone}}
	}
	return []bson.M{
		{"$match": rangeFilter(start, end)},
		{"$group": bson.M{
			"_id": bson.M{
				"year":  date("$year"),
				"month": date("$month"),
				"key":   bson.M{"$ifNull": bson.A{"$" + field, ""}},
			},
			"revenue": bson.M{"$sum": bson.M{"$toDecimal": bson.M{"$ifNull": bson.A{"$total", 0}}}},
			"orders":  bson.M{"$sum": 1},
		}},
		{"$sort": bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}, {Key: "_id.key", Value: 1}}},
	}
}

// MonthlyByOrderType agrupación mensual por tipo de pedido.
func (r *AnalyticsRepo) MonthlyByOrderType(ctx context.Context, start, end time.Time) ([]repository.MonthlyGroupResult, error) {
	return r.monthly(ctx, "mongo.Analytics.MonthlyByOrderType", monthlyPipeline(start, end, "orderType", r.timezone))
}

// MonthlyByDeliveryType agrupación mensual por modalidad de entrega.
func (r *AnalyticsRepo) MonthlyByDeliveryType(ctx context.Context, start, end time.Time) ([]repository.MonthlyGroupResult, error) {
	return r.monthly(ctx, "mongo.Analytics.MonthlyByDeliveryType", monthlyPipeline(start, end, "deliveryType", r.timezone))
}

func (r *AnalyticsRepo) monthly(ctx context.Context, op string, pipeline []bson.M) ([]repository.MonthlyGroupResult, error) {
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrap(op, err)
	}
	var rows []monthlyRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, wrap(op+": decode", err)
	}
	out := make([]repository.MonthlyGroupResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, repository.MonthlyGroupResult{
			Year:    row.ID.Year,
			Month:   row.ID.Month,
			Key:     row.ID.Key,
			Revenue: decimalFrom128(row.Revenue),
			Orders:  row.Orders,
		})
	}
	return out, nil
}

// Totals ingresos y cantidad de pedidos del período. Sin pedidos devuelve ceros.
func (r *AnalyticsRepo) Totals(ctx context.Context, start, end time.Time) (repository.PeriodTotals, error) {
	pipeline := []bson.M{
		{"$match": rangeFilter(start, end)},
		{"$group": bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": bson.M{"$toDecimal": bson.M{"$ifNull": bson.A{"$total", 0}}}},
			"orders":  bson.M{"$sum": 1},
		}},
	}
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return repository.PeriodTotals{}, wrap("mongo.Analytics.Totals", err)
	}
	var rows []struct {
		Revenue primitive.Decimal128 `bson:"revenue"`
		Orders  int                  `bson:"orders"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return repository.PeriodTotals{}, wrap("mongo.Analytics.Totals: decode", err)
	}
	if len(rows) == 0 {
		return repository.PeriodTotals{Revenue: decimal.Zero}, nil
	}
	return repository.PeriodTotals{Revenue: decimalFrom128(rows[0].Revenue), Orders: rows[0].Orders}, nil
}
