package campaign

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Petfood-admin/internal/domain"
)

// ParseSchedule interpreta una expresión cron estándar de 5 campos.
func ParseSchedule(expr string) (cron.Schedule, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidSchedule, expr, err)
	}
	return sched, nil
}

// IsDue informa si la campaña tiene que salir en esta ejecución: hubo un disparo en
// (now - tolerance, now] y la última ejecución no cae dentro de esa ventana.
func IsDue(sched cron.Schedule, lastRunAt *time.Time, now time.Time, tolerance time.Duration) bool {
	windowStart := now.Add(-tolerance)
	if sched.Next(windowStart).After(now) {
		return false
	}
	return lastRunAt == nil || !lastRunAt.After(windowStart)
}
