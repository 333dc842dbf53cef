package wholesale

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/ports"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/catalog"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
	"github.com/jhoicas/Petfood-admin/pkg/metrics"
)

const (
	ledgerWriters       = 4  // escrituras concurrentes del libro mensual
	defaultAuditListing = 50 // filas de la auditoría de ítems sin match
)

// StatsUseCase estadísticas de volumen y frecuencia de compra por punto de venta.
//
// La lectura (ComputeAll, ComputeOne) no escribe nada: el libro mensual y la auditoría de
// ítems sin match solo se actualizan en RecomputeLedgers.
type StatsUseCase struct {
	outlets   repository.OutletRepository
	orders    repository.OrderRepository
	unmatched repository.UnmatchedItemRepository
	matchers  MatcherSource
	pdf       StatsPDFGenerator
	email     ports.EmailSender
	report    ReportConfig
	metrics   *metrics.Metrics
	log       *logger.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewStatsUseCase construye el caso de uso. email puede ser nil si SMTP no está configurado.
func NewStatsUseCase(
	outlets repository.OutletRepository,
	orders repository.OrderRepository,
	unmatched repository.UnmatchedItemRepository,
	matchers MatcherSource,
	pdf StatsPDFGenerator,
	email ports.EmailSender,
	report ReportConfig,
	m *metrics.Metrics,
	log *logger.Logger,
	loc *time.Location,
) *StatsUseCase {
	return &StatsUseCase{
		outlets:   outlets,
		orders:    orders,
		unmatched: unmatched,
		matchers:  matchers,
		pdf:       pdf,
		email:     email,
		report:    report,
		metrics:   m,
		log:       log.Component("wholesale"),
		loc:       loc,
		now:       time.Now,
	}
}

// ── Lectura ───────────────────────────────────────────────────────────────────

// ComputeAll estadísticas de todos los puntos de venta activos.
// Los pedidos se leen con una sola consulta agrupada; cualquier error aborta el lote completo.
func (uc *StatsUseCase) ComputeAll(ctx context.Context) (*dto.WholesaleStatsDTO, error) {
	started := uc.now()
	defer func() { uc.metrics.ObserveStats(uc.now().Sub(started)) }()

	outlets, orders, m, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.WholesaleStatsDTO{
		GeneratedAt: started,
		Outlets:     make([]dto.OutletStatsDTO, 0, len(outlets)),
	}
	all := newUnmatchedTally()
	for _, o := range outlets {
		stats, tally := outletStats(o, orders[o.ID], m)
		res.Outlets = append(res.Outlets, stats)
		res.TotalKilos += stats.TotalKilos
		all.merge(tally)
	}
	res.Unmatched = all.dto()
	uc.reportUnmatched(all)
	return res, nil
}

// ComputeOne estadísticas de un punto de venta. ErrNotFound si no existe.
func (uc *StatsUseCase) ComputeOne(ctx context.Context, outletID string) (*dto.OutletStatsDTO, error) {
	o, err := uc.outlets.GetByID(ctx, outletID)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.ListWholesaleByOutlets(ctx, []string{o.ID})
	if err != nil {
		return nil, fmt.Errorf("wholesale: pedidos: %w", err)
	}
	m, err := uc.matchers.WholesaleMatcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("wholesale: catálogo: %w", err)
	}
	stats, tally := outletStats(o, orders[o.ID], m)
	uc.reportUnmatched(tally)
	return &stats, nil
}

// UnmatchedAudit nombres auditados sin match, los más frecuentes primero.
func (uc *StatsUseCase) UnmatchedAudit(ctx context.Context, limit int) ([]dto.UnmatchedItemDTO, error) {
	if limit <= 0 {
		limit = defaultAuditListing
	}
	items, err := uc.unmatched.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("wholesale: auditoría: %w", err)
	}
	out := make([]dto.UnmatchedItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.UnmatchedItemDTO{
			NormalizedName: it.NormalizedName,
			SampleName:     it.SampleName,
			Occurrences:    it.Occurrences,
			Amount:         it.Amount,
			LastSeenAt:     it.LastSeenAt,
		})
	}
	return out, nil
}

// ── Escritura ─────────────────────────────────────────────────────────────────

// RecomputeLedgers recalcula los kilos por mes calendario de cada punto de venta activo y
// reemplaza su libro mensual. Los meses sin pedidos que ya tenían una carga manual se conservan.
// Los nombres sin match se suman a la auditoría.
func (uc *StatsUseCase) RecomputeLedgers(ctx context.Context) (*dto.LedgerRecomputeDTO, error) {
	outlets, orders, m, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	all := newUnmatchedTally()
	ledgers := make([][]entity.MonthlyKilos, len(outlets))
	entries := 0
	for i, o := range outlets {
		tally := newUnmatchedTally()
		ledgers[i] = mergeLedger(o.MonthlyKilos, monthlyLedger(orders[o.ID], m, uc.loc, tally))
		entries += len(ledgers[i])
		all.merge(tally)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ledgerWriters)
	for i, o := range outlets {
		id, ledger := o.ID, ledgers[i]
		g.Go(func() error {
			if err := uc.outlets.ReplaceMonthlyKilos(gctx, id, ledger); err != nil {
				return fmt.Errorf("wholesale: libro de %s: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := all.items()
	if len(items) > 0 {
		if err := uc.unmatched.Upsert(ctx, items); err != nil {
			return nil, fmt.Errorf("wholesale: auditoría: %w", err)
		}
	}
	uc.reportUnmatched(all)

	uc.log.Info().
		Int("outlets", len(outlets)).
		Int("ledger_entries", entries).
		Int("unmatched_names", len(items)).
		Msg("libro mensual recalculado")

	return &dto.LedgerRecomputeDTO{Outlets: len(outlets), LedgerEntries: entries, UnmatchedNames: len(items)}, nil
}

// mergeLedger combina el libro existente con los meses recalculados (estos ganan).
// Resultado ordenado por año y mes, una entrada por mes.
func mergeLedger(existing []entity.MonthlyKilos, computed map[int]float64) []entity.MonthlyKilos {
	merged := make(map[int]float64, len(existing)+len(computed))
	for _, e := range existing {
		merged[e.Year*12+e.Month-1] = e.Kilos
	}
	for k, v := range computed {
		merged[k] = round2(v)
	}
	keys := make([]int, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]entity.MonthlyKilos, 0, len(keys))
	for _, k := range keys {
		out = append(out, entity.MonthlyKilos{Month: k%12 + 1, Year: k / 12, Kilos: merged[k]})
	}
	return out
}

// ── Exportaciones ─────────────────────────────────────────────────────────────

// StatsPDF genera el PDF con la tabla de estadísticas de todos los puntos de venta.
func (uc *StatsUseCase) StatsPDF(ctx context.Context) ([]byte, error) {
	stats, err := uc.ComputeAll(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.pdf.GenerateStatsPDF(stats)
	if err != nil {
		return nil, fmt.Errorf("wholesale: pdf: %w", err)
	}
	return pdf, nil
}

// EmailSummary envía el resumen en texto plano a los destinatarios configurados.
func (uc *StatsUseCase) EmailSummary(ctx context.Context) (*dto.SummaryEmailDTO, error) {
	if uc.email == nil {
		return nil, fmt.Errorf("%w: SMTP no configurado", domain.ErrInvalidInput)
	}
	if len(uc.report.Recipients) == 0 {
		return nil, fmt.Errorf("%w: no hay destinatarios para el resumen", domain.ErrInvalidInput)
	}
	stats, err := uc.ComputeAll(ctx)
	if err != nil {
		return nil, err
	}

	subject := "Resumen mayorista " + stats.GeneratedAt.In(uc.loc).Format("02/01/2006")
	body := summaryBody(stats, uc.loc)
	msgs := make([]ports.EmailMessage, 0, len(uc.report.Recipients))
	for _, to := range uc.report.Recipients {
		msgs = append(msgs, ports.EmailMessage{From: uc.report.From, To: to, Subject: subject, Body: body})
	}
	if err := uc.email.SendBatch(ctx, msgs); err != nil {
		return nil, fmt.Errorf("wholesale: envío del resumen: %w", err)
	}
	return &dto.SummaryEmailDTO{Recipients: len(msgs)}, nil
}

// summaryBody texto del resumen con números en formato es (decimales con coma).
func summaryBody(stats *dto.WholesaleStatsDTO, loc *time.Location) string {
	p := message.NewPrinter(language.Spanish)
	var b strings.Builder

	b.WriteString(p.Sprintf("Resumen mayorista al %s\n", stats.GeneratedAt.In(loc).Format("02/01/2006 15:04")))
	b.WriteString(p.Sprintf("Puntos de venta: %d\n", len(stats.Outlets)))
	b.WriteString(p.Sprintf("Kilos totales: %d\n\n", stats.TotalKilos))

	for _, o := range stats.Outlets {
		zone := o.Zone
		if zone == "" {
			zone = noZone
		}
		b.WriteString(p.Sprintf("- %s (%s): %d kg, %d pedidos, promedio %.2f kg, %s\n",
			o.OutletName, zone, o.TotalKilos, o.OrderCount, o.AverageKilos, o.Frequency.Label))
	}

	if len(stats.Unmatched) > 0 {
		b.WriteString(p.Sprintf("\nÍtems sin coincidencia en el catálogo: %d\n", len(stats.Unmatched)))
		for _, u := range stats.Unmatched {
			b.WriteString(p.Sprintf("- %s (%d)\n", u.Name, u.Occurrences))
		}
	}
	return b.String()
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (uc *StatsUseCase) load(ctx context.Context) ([]*entity.Outlet, map[string][]entity.Order, *catalog.Matcher, error) {
	outlets, err := uc.outlets.ListActive(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wholesale: puntos de venta: %w", err)
	}
	ids := make([]string, 0, len(outlets))
	for _, o := range outlets {
		ids = append(ids, o.ID)
	}
	orders, err := uc.orders.ListWholesaleByOutlets(ctx, ids)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wholesale: pedidos: %w", err)
	}
	m, err := uc.matchers.WholesaleMatcher(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("wholesale: catálogo: %w", err)
	}
	return outlets, orders, m, nil
}

func (uc *StatsUseCase) reportUnmatched(t *unmatchedTally) {
	n := t.total()
	if n == 0 {
		return
	}
	uc.metrics.UnmatchedItems(n)
	for _, it := range t.items() {
		uc.log.Debug().Str("item", it.SampleName).Int("occurrences", it.Occurrences).Msg("ítem sin coincidencia en el catálogo")
	}
}
