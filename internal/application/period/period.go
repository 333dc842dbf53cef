// Package period resuelve rangos de fechas y etiquetas de meses de los reportes.
package period

import (
	"fmt"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/domain"
)

const dateLayout = "2006-01-02"

var months = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Range rango semiabierto [Start, End) en la zona horaria del negocio.
type Range struct {
	Start time.Time
	End   time.Time
}

// LastDay último día incluido en el rango.
func (r Range) LastDay() time.Time {
	return r.End.AddDate(0, 0, -1)
}

// StartLabel y EndLabel fechas YYYY-MM-DD para las respuestas.
func (r Range) StartLabel() string { return r.Start.Format(dateLayout) }
func (r Range) EndLabel() string   { return r.LastDay().Format(dateLayout) }

// Parse interpreta start_date/end_date (YYYY-MM-DD, end inclusive) en loc.
// Por defecto: desde el primer día del mes de now hasta hoy.
func Parse(startStr, endStr string, now time.Time, loc *time.Location) (Range, error) {
	now = now.In(loc)
	today := DayStart(now)

	var start, end time.Time
	if endStr == "" {
		end = today.AddDate(0, 0, 1)
	} else {
		d, err := time.ParseInLocation(dateLayout, endStr, loc)
		if err != nil {
			return Range{}, fmt.Errorf("%w: end_date inválido", domain.ErrInvalidInput)
		}
		end = d.AddDate(0, 0, 1) // inclusive hasta el final del día
	}

	if startStr == "" {
		start = MonthStart(now)
	} else {
		d, err := time.ParseInLocation(dateLayout, startStr, loc)
		if err != nil {
			return Range{}, fmt.Errorf("%w: start_date inválido", domain.ErrInvalidInput)
		}
		start = d
	}

	if !start.Before(end) {
		return Range{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return Range{Start: start, End: end}, nil
}

// DayStart 00:00 del día de t, en su zona.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart día 1 a las 00:00 del mes de t, en su zona.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Months meses calendario que toca el rango, en orden.
func (r Range) Months() []time.Time {
	var out []time.Time
	for m := MonthStart(r.Start); m.Before(r.End); m = m.AddDate(0, 1, 0) {
		out = append(out, m)
	}
	return out
}

// MonthName nombre del mes en español.
func MonthName(m time.Month) string {
	return months[m-1]
}

// MonthLabel etiqueta legible del mes, ej: "Febrero 2026".
func MonthLabel(m time.Month, year int) string {
	return fmt.Sprintf("%s %d", MonthName(m), year)
}
