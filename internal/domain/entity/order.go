package entity

import "time"

// Tipos de pedido.
const (
	OrderTypeMinorista = "minorista"
	OrderTypeMayorista = "mayorista"
	OrderTypeSameDay   = "sameDay"
)

// Estados de pedido.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Modalidades de entrega.
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

// Order representa un pedido. Inmutable una vez creado salvo Status y ContactedAt.
type Order struct {
	ID           string
	CreatedAt    time.Time
	OrderType    string // minorista | mayorista | sameDay
	Status       string
	DeliveryType string
	Total        float64
	Items        []LineItem
	OutletID     string // vacío si el pedido no pertenece a un punto de venta
	Customer     OrderCustomer
	ContactedAt  *time.Time
}

// OrderCustomer datos de contacto del cliente que hizo el pedido.
type OrderCustomer struct {
	Name  string
	Email string
	Phone string
}

// LineItem un producto dentro de un pedido, con sus variantes compradas.
type LineItem struct {
	ID      string
	Name    string
	Options []ItemOption
}

// ItemOption variante de un ítem (sabor, presentación) con cantidad y precio.
type ItemOption struct {
	Name     string
	Quantity int
	Price    float64
}

// IsValidOrderStatus informa si s es un estado de pedido conocido.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
