package mongodb

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

func TestOrderDoc_DecodificaDocumentoGuardado(t *testing.T) {
	oid := primitive.NewObjectID()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{
		"_id":          oid,
		"createdAt":    created,
		"orderType":    "mayorista",
		"status":       "delivered",
		"total":        int32(1500),
		"puntoVentaId": "65f0c0ffee",
		"items": bson.A{
			bson.M{"name": "BIG DOG (15kg) - POLLO", "options": bson.A{
				bson.M{"name": "POLLO", "quantity": 3.0, "price": 100.5},
			}},
			bson.M{"name": "Huesos"},
		},
		"customer": bson.M{"name": "Ana", "email": "ana@x.com"},
	})
	require.NoError(t, err)

	var doc orderDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	o := doc.toEntity()

	assert.Equal(t, oid.Hex(), o.ID)
	assert.Equal(t, created, o.CreatedAt.UTC())
	assert.Equal(t, 1500.0, o.Total)
	assert.Equal(t, "65f0c0ffee", o.OutletID)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 3, o.Items[0].Options[0].Quantity)
	assert.Empty(t, o.Items[1].Options)
	assert.Equal(t, "ana@x.com", o.Customer.Email)
	assert.Nil(t, o.ContactedAt)
}

func TestOutletDoc_LibroVacioSeGuardaComoArreglo(t *testing.T) {
	d := outletDocFrom(&entity.Outlet{Name: "Pet Shop Norte", IsActive: true})
	raw, err := bson.Marshal(d)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	ledger, ok := m["kilosMensuales"].(bson.A)
	require.True(t, ok, "kilosMensuales debe ser un arreglo")
	assert.Len(t, ledger, 0)
	_, hasID := m["_id"]
	assert.False(t, hasID)
}

func TestOutletDoc_IdaYVuelta(t *testing.T) {
	in := &entity.Outlet{
		Name: "Pet Shop Norte", Zone: "Norte", FreezerCapacity: 200, IsActive: true,
		Contact:      entity.OutletContact{Name: "Luis", Phone: "+54 11 5555"},
		MonthlyKilos: []entity.MonthlyKilos{{Month: 3, Year: 2026, Kilos: 120.5}},
	}
	d := outletDocFrom(in)
	d.ID = primitive.NewObjectID()

	out := d.toEntity()
	assert.Equal(t, d.ID.Hex(), out.ID)
	assert.Equal(t, in.MonthlyKilos, out.MonthlyKilos)
	assert.Equal(t, in.Contact, out.Contact)
}

func TestPriceDoc_PrecioDecimal(t *testing.T) {
	p := &entity.PricedProduct{Product: "BIG DOG", Weight: "15KG", Price: decimal.RequireFromString("12500.50")}
	d := priceDocFrom(p)
	assert.Equal(t, 12500.5, d.Price)
	assert.True(t, d.toEntity().Price.Equal(p.Price))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, wrap("op", nil))
	assert.ErrorIs(t, wrap("op", mongo.ErrNoDocuments), domain.ErrNotFound)

	cause := errors.New("timeout")
	err := wrap("mongo.Orders.ListByRange", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "mongo.Orders.ListByRange")
}

func TestObjectID_Invalido(t *testing.T) {
	_, err := objectID("no-es-hex")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	oid := primitive.NewObjectID()
	got, err := objectID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)
}

func TestDecimalFrom128(t *testing.T) {
	d, err := primitive.ParseDecimal128("1234.50")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1234.5").Equal(decimalFrom128(d)))
}
