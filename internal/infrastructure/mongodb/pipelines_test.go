package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

func TestWholesaleByOutletsFilter(t *testing.T) {
	f := wholesaleByOutletsFilter([]string{"a", "b"})
	assert.Equal(t, entity.OrderTypeMayorista, f["orderType"])
	assert.Equal(t, bson.M{"$in": []string{"a", "b"}}, f["puntoVentaId"])
}

func TestRangeFilter_ExcluyeCancelados(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)
	f := rangeFilter(start, end)

	assert.Equal(t, bson.M{"$gte": start, "$lt": end}, f["createdAt"])
	assert.Equal(t, bson.M{"$ne": entity.OrderStatusCancelled}, f["status"])
}

func TestMonthlyPipeline_AgrupaPorCampoYZona(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := monthlyPipeline(start, start.AddDate(0, 1, 0), "deliveryType", "America/Argentina/Buenos_Aires")
	require.Len(t, p, 3)

	group, ok := p[1]["$group"].(bson.M)
	require.True(t, ok)
	id := group["_id"].(bson.M)
	assert.Equal(t, bson.M{"$year": bson.M{"date": "$createdAt", "timezone": "America/Argentina/Buenos_Aires"}}, id["year"])
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$deliveryType", ""}}, id["key"])
	assert.Equal(t, bson.M{"$sum": 1}, group["orders"])
}

func TestClientPipeline(t *testing.T) {
	all := clientPipeline(nil)
	since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	active := clientPipeline(bson.M{"$gte": since})

	assert.Len(t, all, 5)
	require.Len(t, active, 6)
	assert.Equal(t, bson.M{"$match": bson.M{"lastOrderAt": bson.M{"$gte": since}}}, active[4])

	// Email vacío o ausente cae al teléfono, así los clientes solo-WhatsApp no se pierden.
	group := all[2]["$group"].(bson.M)
	assert.Equal(t, bson.M{"$cond": bson.A{
		bson.M{"$in": bson.A{"$customer.email", bson.A{nil, ""}}},
		"$customer.phone",
		"$customer.email",
	}}, group["_id"])
	assert.Equal(t, bson.M{"$match": bson.M{"_id": bson.M{"$nin": bson.A{nil, ""}}}}, all[3])
}
