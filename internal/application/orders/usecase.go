// Package orders contiene las pocas escrituras permitidas sobre pedidos ya creados.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

// OrderUseCase cambio de estado y registro de contacto con el cliente.
type OrderUseCase struct {
	repo repository.OrderRepository
	now  func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

// UpdateStatus cambia el estado del pedido. ErrInvalidInput si el estado no existe.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderUpdateResponse, error) {
	status := strings.TrimSpace(in.Status)
	if !entity.IsValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrInvalidInput, in.Status)
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return &dto.OrderUpdateResponse{ID: id, Status: status}, nil
}

// MarkContacted registra que el cliente fue contactado ahora.
func (uc *OrderUseCase) MarkContacted(ctx context.Context, id string) (*dto.OrderUpdateResponse, error) {
	at := uc.now()
	if err := uc.repo.MarkContacted(ctx, id, at); err != nil {
		return nil, err
	}
	return &dto.OrderUpdateResponse{ID: id, ContactedAt: &at}, nil
}
