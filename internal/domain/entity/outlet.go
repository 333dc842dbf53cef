package entity

import "time"

// Outlet punto de venta mayorista. Se desactiva (IsActive=false) en lugar de borrarse.
type Outlet struct {
	ID              string
	Name            string
	Zone            string
	Frequency       string // clasificación manual de frecuencia de pedidos
	FreezerCapacity int    // kilos
	Contact         OutletContact
	IsActive        bool
	MonthlyKilos    []MonthlyKilos
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OutletContact datos de contacto del punto de venta.
type OutletContact struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// MonthlyKilos entrada del libro mensual de kilos. Única por (Month, Year).
type MonthlyKilos struct {
	Month int
	Year  int
	Kilos float64
}

// KilosFor devuelve los kilos registrados para el mes/año indicado (0 si no hay entrada).
func (o *Outlet) KilosFor(month, year int) (float64, bool) {
	for _, e := range o.MonthlyKilos {
		if e.Month == month && e.Year == year {
			return e.Kilos, true
		}
	}
	return 0, false
}
