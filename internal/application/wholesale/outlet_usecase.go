package wholesale

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

// OutletUseCase ABM de puntos de venta y carga manual del libro mensual.
type OutletUseCase struct {
	repo repository.OutletRepository
	now  func() time.Time
}

// NewOutletUseCase construye el caso de uso.
func NewOutletUseCase(repo repository.OutletRepository) *OutletUseCase {
	return &OutletUseCase{repo: repo, now: time.Now}
}

// Create da de alta un punto de venta activo con el libro vacío.
func (uc *OutletUseCase) Create(ctx context.Context, in dto.CreateOutletRequest) (*dto.OutletResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if in.FreezerCapacity < 0 {
		return nil, fmt.Errorf("%w: freezer_capacity no puede ser negativo", domain.ErrInvalidInput)
	}
	now := uc.now()
	o := &entity.Outlet{
		Name:            name,
		Zone:            strings.TrimSpace(in.Zone),
		Frequency:       strings.TrimSpace(in.Frequency),
		FreezerCapacity: in.FreezerCapacity,
		Contact:         contactFrom(in.Contact),
		IsActive:        true,
		MonthlyKilos:    []entity.MonthlyKilos{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("outlets: crear: %w", err)
	}
	return toOutletResponse(o), nil
}

// Get obtiene un punto de venta. ErrNotFound si no existe.
func (uc *OutletUseCase) Get(ctx context.Context, id string) (*dto.OutletResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOutletResponse(o), nil
}

// ListActive puntos de venta activos.
func (uc *OutletUseCase) ListActive(ctx context.Context) ([]dto.OutletResponse, error) {
	outlets, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("outlets: listar: %w", err)
	}
	out := make([]dto.OutletResponse, 0, len(outlets))
	for _, o := range outlets {
		out = append(out, *toOutletResponse(o))
	}
	return out, nil
}

// Update aplica solo los campos presentes en la petición.
func (uc *OutletUseCase) Update(ctx context.Context, id string, in dto.UpdateOutletRequest) (*dto.OutletResponse, error) {
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		o.Name = name
	}
	if in.Zone != nil {
		o.Zone = strings.TrimSpace(*in.Zone)
	}
	if in.Frequency != nil {
		o.Frequency = strings.TrimSpace(*in.Frequency)
	}
	if in.FreezerCapacity != nil {
		if *in.FreezerCapacity < 0 {
			return nil, fmt.Errorf("%w: freezer_capacity no puede ser negativo", domain.ErrInvalidInput)
		}
		o.FreezerCapacity = *in.FreezerCapacity
	}
	if in.Contact != nil {
		o.Contact = contactFrom(*in.Contact)
	}
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}
	o.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return toOutletResponse(o), nil
}

// Delete baja lógica del punto de venta.
func (uc *OutletUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Deactivate(ctx, id)
}

// SetMonthlyKilos carga manual de los kilos de un mes; reemplaza la entrada si ya existe.
func (uc *OutletUseCase) SetMonthlyKilos(ctx context.Context, id string, in dto.SetMonthlyKilosRequest) (*dto.OutletResponse, error) {
	switch {
	case in.Month < 1 || in.Month > 12:
		return nil, fmt.Errorf("%w: month debe estar entre 1 y 12", domain.ErrInvalidInput)
	case in.Year < 2000:
		return nil, fmt.Errorf("%w: year inválido", domain.ErrInvalidInput)
	case in.Kilos < 0:
		return nil, fmt.Errorf("%w: kilos no puede ser negativo", domain.ErrInvalidInput)
	}
	entry := entity.MonthlyKilos{Month: in.Month, Year: in.Year, Kilos: round2(in.Kilos)}
	if err := uc.repo.SetMonthlyKilos(ctx, id, entry); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

func contactFrom(c dto.OutletContactDTO) entity.OutletContact {
	return entity.OutletContact{
		Name:    strings.TrimSpace(c.Name),
		Phone:   strings.TrimSpace(c.Phone),
		Email:   strings.TrimSpace(c.Email),
		Address: strings.TrimSpace(c.Address),
	}
}

func toOutletResponse(o *entity.Outlet) *dto.OutletResponse {
	ledger := make([]dto.MonthlyKilosDTO, 0, len(o.MonthlyKilos))
	for _, e := range o.MonthlyKilos {
		ledger = append(ledger, dto.MonthlyKilosDTO{Month: e.Month, Year: e.Year, Kilos: e.Kilos})
	}
	return &dto.OutletResponse{
		ID:              o.ID,
		Name:            o.Name,
		Zone:            o.Zone,
		Frequency:       o.Frequency,
		FreezerCapacity: o.FreezerCapacity,
		Contact: dto.OutletContactDTO{
			Name:    o.Contact.Name,
			Phone:   o.Contact.Phone,
			Email:   o.Contact.Email,
			Address: o.Contact.Address,
		},
		IsActive:     o.IsActive,
		MonthlyKilos: ledger,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
