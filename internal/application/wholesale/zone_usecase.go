package wholesale

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/period"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
)

const noZone = "Sin zona"

// ZoneUseCase volumen del libro mensual agrupado por zona y por mes.
type ZoneUseCase struct {
	outlets repository.OutletRepository
	loc     *time.Location
	now     func() time.Time
}

// NewZoneUseCase construye el caso de uso. Los meses se calculan en loc.
func NewZoneUseCase(outlets repository.OutletRepository, loc *time.Location) *ZoneUseCase {
	return &ZoneUseCase{outlets: outlets, loc: loc, now: time.Now}
}

// CurrentMonthByZone kilos del mes en curso por zona, de mayor a menor volumen.
func (uc *ZoneUseCase) CurrentMonthByZone(ctx context.Context) (*dto.ZoneReportDTO, error) {
	now := uc.now().In(uc.loc)
	month, year := int(now.Month()), now.Year()

	outlets, err := uc.outlets.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("zonas: puntos de venta: %w", err)
	}

	byZone := make(map[string]*dto.ZoneVolumeDTO)
	var order []string
	var total float64
	for _, o := range outlets {
		zone := strings.TrimSpace(o.Zone)
		if zone == "" {
			zone = noZone
		}
		z, ok := byZone[zone]
		if !ok {
			z = &dto.ZoneVolumeDTO{Zone: zone}
			byZone[zone] = z
			order = append(order, zone)
		}
		z.Outlets++
		if kilos, _ := o.KilosFor(month, year); kilos > 0 {
			z.TotalKilos += kilos
			z.OutletsWithVolume++
			total += kilos
		}
	}

	zones := make([]dto.ZoneVolumeDTO, 0, len(order))
	for _, name := range order {
		z := byZone[name]
		z.TotalKilos = round2(z.TotalKilos)
		zones = append(zones, *z)
	}
	sort.SliceStable(zones, func(i, j int) bool {
		if zones[i].TotalKilos != zones[j].TotalKilos {
			return zones[i].TotalKilos > zones[j].TotalKilos
		}
		return zones[i].Zone < zones[j].Zone
	})

	return &dto.ZoneReportDTO{
		Month:      month,
		Year:       year,
		Label:      period.MonthLabel(now.Month(), year),
		TotalKilos: round2(total),
		Zones:      zones,
	}, nil
}

// MonthlyVolume kilos del libro por mes del año indicado (0 = año en curso), los 12 meses.
func (uc *ZoneUseCase) MonthlyVolume(ctx context.Context, year int) (*dto.MonthlyVolumeDTO, error) {
	if year == 0 {
		year = uc.now().In(uc.loc).Year()
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: año fuera de rango", domain.ErrInvalidInput)
	}

	outlets, err := uc.outlets.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("volumen: puntos de venta: %w", err)
	}

	res := &dto.MonthlyVolumeDTO{Year: year, Months: make([]dto.MonthVolumeDTO, 12)}
	for i := range res.Months {
		res.Months[i] = dto.MonthVolumeDTO{Month: i + 1, Label: period.MonthName(time.Month(i + 1))}
	}
	for _, o := range outlets {
		for _, e := range o.MonthlyKilos {
			if e.Year != year || e.Month < 1 || e.Month > 12 {
				continue
			}
			m := &res.Months[e.Month-1]
			m.Kilos += e.Kilos
			m.Outlets++
			res.TotalKilos += e.Kilos
		}
	}
	for i := range res.Months {
		res.Months[i].Kilos = round2(res.Months[i].Kilos)
	}
	res.TotalKilos = round2(res.TotalKilos)
	return res, nil
}
