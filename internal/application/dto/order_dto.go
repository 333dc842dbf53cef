package dto

import "time"

// UpdateOrderStatusRequest cambio de estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderUpdateResponse confirmación de una actualización de pedido.
type OrderUpdateResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status,omitempty"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
}
