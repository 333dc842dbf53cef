package mongodb

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
)

// ── Pedidos ───────────────────────────────────────────────────────────────────

type orderDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	OrderType    string             `bson:"orderType"`
	Status       string             `bson:"status"`
	DeliveryType string             `bson:"deliveryType"`
	Total        float64            `bson:"total"`
	Items        []lineItemDoc      `bson:"items"`
	PuntoVentaID string             `bson:"puntoVentaId,omitempty"`
	Customer     customerDoc        `bson:"customer"`
	ContactedAt  *time.Time         `bson:"contactedAt,omitempty"`
}

type lineItemDoc struct {
	ID      string          `bson:"id,omitempty"`
	Name    string          `bson:"name"`
	Options []itemOptionDoc `bson:"options,omitempty"`
}

type itemOptionDoc struct {
	Name     string  `bson:"name"`
	Quantity int     `bson:"quantity"`
	Price    float64 `bson:"price"`
}

type customerDoc struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
	Phone string `bson:"phone"`
}

func (d orderDoc) toEntity() entity.Order {
	o := entity.Order{
		ID:           d.ID.Hex(),
		CreatedAt:    d.CreatedAt,
		OrderType:    d.OrderType,
		Status:       d.Status,
		DeliveryType: d.DeliveryType,
		Total:        d.Total,
		OutletID:     d.PuntoVentaID,
		Customer:     entity.OrderCustomer{Name: d.Customer.Name, Email: d.Customer.Email, Phone: d.Customer.Phone},
		ContactedAt:  d.ContactedAt,
		Items:        make([]entity.LineItem, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		li := entity.LineItem{ID: it.ID, Name: it.Name}
		for _, op := range it.Options {
			li.Options = append(li.Options, entity.ItemOption{Name: op.Name, Quantity: op.Quantity, Price: op.Price})
		}
		o.Items = append(o.Items, li)
	}
	return o
}

// ── Precios ───────────────────────────────────────────────────────────────────

type priceDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Section   string             `bson:"section"`
	Product   string             `bson:"product"`
	Weight    string             `bson:"weight,omitempty"`
	PriceType string             `bson:"priceType"`
	Price     float64            `bson:"price"`
	IsActive  bool               `bson:"isActive"`
	Month     int                `bson:"month"`
	Year      int                `bson:"year"`
	Options   []string           `bson:"options,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d priceDoc) toEntity() entity.PricedProduct {
	return entity.PricedProduct{
		ID:        d.ID.Hex(),
		Section:   d.Section,
		Product:   d.Product,
		Weight:    d.Weight,
		PriceType: d.PriceType,
		Price:     decimal.NewFromFloat(d.Price),
		IsActive:  d.IsActive,
		Month:     d.Month,
		Year:      d.Year,
		Options:   d.Options,
		UpdatedAt: d.UpdatedAt,
	}
}

func priceDocFrom(p *entity.PricedProduct) priceDoc {
	return priceDoc{
		Section:   p.Section,
		Product:   p.Product,
		Weight:    p.Weight,
		PriceType: p.PriceType,
		Price:     p.Price.InexactFloat64(),
		IsActive:  p.IsActive,
		Month:     p.Month,
		Year:      p.Year,
		Options:   p.Options,
		UpdatedAt: p.UpdatedAt,
	}
}

// ── Puntos de venta ───────────────────────────────────────────────────────────

type outletDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Zone            string             `bson:"zone"`
	Frequency       string             `bson:"frequency"`
	FreezerCapacity int                `bson:"freezerCapacity"`
	Contact         contactDoc         `bson:"contact"`
	IsActive        bool               `bson:"isActive"`
	KilosMensuales  []monthlyKilosDoc  `bson:"kilosMensuales"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

type contactDoc struct {
	Name    string `bson:"name"`
	Phone   string `bson:"phone"`
	Email   string `bson:"email"`
	Address string `bson:"address"`
}

type monthlyKilosDoc struct {
	Month int     `bson:"month"`
	Year  int     `bson:"year"`
	Kilos float64 `bson:"kilos"`
}

func (d outletDoc) toEntity() *entity.Outlet {
	o := &entity.Outlet{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Zone:            d.Zone,
		Frequency:       d.Frequency,
		FreezerCapacity: d.FreezerCapacity,
		Contact: entity.OutletContact{
			Name: d.Contact.Name, Phone: d.Contact.Phone, Email: d.Contact.Email, Address: d.Contact.Address,
		},
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, k := range d.KilosMensuales {
		o.MonthlyKilos = append(o.MonthlyKilos, entity.MonthlyKilos{Month: k.Month, Year: k.Year, Kilos: k.Kilos})
	}
	return o
}

func outletDocFrom(o *entity.Outlet) outletDoc {
	return outletDoc{
		Name:            o.Name,
		Zone:            o.Zone,
		Frequency:       o.Frequency,
		FreezerCapacity: o.FreezerCapacity,
		Contact: contactDoc{
			Name: o.Contact.Name, Phone: o.Contact.Phone, Email: o.Contact.Email, Address: o.Contact.Address,
		},
		IsActive:       o.IsActive,
		KilosMensuales: ledgerDocs(o.MonthlyKilos),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// ledgerDocs nunca devuelve nil: el campo se guarda como arreglo vacío, no como null.
func ledgerDocs(ledger []entity.MonthlyKilos) []monthlyKilosDoc {
	out := make([]monthlyKilosDoc, 0, len(ledger))
	for _, k := range ledger {
		out = append(out, monthlyKilosDoc{Month: k.Month, Year: k.Year, Kilos: k.Kilos})
	}
	return out
}

// ── Campañas ──────────────────────────────────────────────────────────────────

type campaignDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Channel        string             `bson:"channel"`
	CronExpression string             `bson:"cronExpression"`
	Segment        string             `bson:"segment"`
	Subject        string             `bson:"subject"`
	Body           string             `bson:"body"`
	IsActive       bool               `bson:"isActive"`
	LastRunAt      *time.Time         `bson:"lastRunAt,omitempty"`
}

func (d campaignDoc) toEntity() entity.Campaign {
	return entity.Campaign{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Channel:        d.Channel,
		CronExpression: d.CronExpression,
		Segment:        d.Segment,
		Subject:        d.Subject,
		Body:           d.Body,
		IsActive:       d.IsActive,
		LastRunAt:      d.LastRunAt,
	}
}
