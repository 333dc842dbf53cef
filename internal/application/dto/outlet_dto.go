package dto

import "time"

// OutletContactDTO datos de contacto.
type OutletContactDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// MonthlyKilosDTO entrada del libro mensual.
type MonthlyKilosDTO struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Kilos float64 `json:"kilos"`
}

// CreateOutletRequest alta de punto de venta.
type CreateOutletRequest struct {
	Name            string           `json:"name"`
	Zone            string           `json:"zone"`
	Frequency       string           `json:"frequency"`
	FreezerCapacity int              `json:"freezer_capacity"`
	Contact         OutletContactDTO `json:"contact"`
}

// UpdateOutletRequest edición parcial: solo se aplican los campos presentes.
type UpdateOutletRequest struct {
	Name            *string           `json:"name"`
	Zone            *string           `json:"zone"`
	Frequency       *string           `json:"frequency"`
	FreezerCapacity *int              `json:"freezer_capacity"`
	Contact         *OutletContactDTO `json:"contact"`
	IsActive        *bool             `json:"is_active"`
}

// SetMonthlyKilosRequest carga manual de kilos de un mes.
type SetMonthlyKilosRequest struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Kilos float64 `json:"kilos"`
}

// OutletResponse salida de un punto de venta.
type OutletResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Zone            string            `json:"zone"`
	Frequency       string            `json:"frequency"`
	FreezerCapacity int               `json:"freezer_capacity"`
	Contact         OutletContactDTO  `json:"contact"`
	IsActive        bool              `json:"is_active"`
	MonthlyKilos    []MonthlyKilosDTO `json:"monthly_kilos"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
