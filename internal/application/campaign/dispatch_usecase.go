// Package campaign despacha las campañas programadas cuando el cron externo llama al endpoint.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/ports"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/internal/domain/repository"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
	"github.com/jhoicas/Petfood-admin/pkg/metrics"
)

const concurrentBatches = 2

// Config parámetros del despacho.
type Config struct {
	Tolerance     time.Duration // ventana hacia atrás en la que un disparo cuenta como vigente
	BatchSize     int
	RatePerSecond float64 // lotes por segundo; <= 0 sin límite
	From          string  // remitente de los emails
}

// DispatchUseCase evalúa las campañas activas y envía las que están vencidas.
type DispatchUseCase struct {
	campaigns repository.CampaignRepository
	clients   repository.ClientRepository
	outlets   repository.OutletRepository
	email     ports.EmailSender
	whatsapp  ports.WhatsAppSender
	cfg       Config
	metrics   *metrics.Metrics
	log       *logger.Logger
	now       func() time.Time
}

// NewDispatchUseCase construye el caso de uso. email y whatsapp pueden ser nil si el canal
// no está configurado; las campañas de ese canal se informan como failed.
func NewDispatchUseCase(
	campaigns repository.CampaignRepository,
	clients repository.ClientRepository,
	outlets repository.OutletRepository,
	email ports.EmailSender,
	whatsapp ports.WhatsAppSender,
	cfg Config,
	m *metrics.Metrics,
	log *logger.Logger,
) *DispatchUseCase {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &DispatchUseCase{
		campaigns: campaigns,
		clients:   clients,
		outlets:   outlets,
		email:     email,
		whatsapp:  whatsapp,
		cfg:       cfg,
		metrics:   m,
		log:       log.Component("campaign"),
		now:       time.Now,
	}
}

// Run evalúa todas las campañas activas. Una campaña con cron inválido o segmento desconocido
// se saltea y el resto sigue; solo un error al listar las campañas aborta la ejecución.
func (uc *DispatchUseCase) Run(ctx context.Context) (*dto.DispatchSummaryDTO, error) {
	now := uc.now()
	campaigns, err := uc.campaigns.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("campaign: listar campañas: %w", err)
	}

	summary := &dto.DispatchSummaryDTO{
		RunID:     uuid.NewString(),
		RanAt:     now,
		Evaluated: len(campaigns),
		Campaigns: make([]dto.CampaignResultDTO, 0, len(campaigns)),
	}
	log := uc.log.With().Str("run_id", summary.RunID).Logger()

	for _, c := range campaigns {
		res := uc.dispatch(ctx, c, now)
		switch res.Result {
		case dto.CampaignSent:
			summary.Sent++
			log.Info().Str("campaign", c.ID).Str("channel", c.Channel).Int("recipients", res.Recipients).Msg("campaña enviada")
		case dto.CampaignSkipped, dto.CampaignFailed, dto.CampaignPartial:
			log.Warn().Str("campaign", c.ID).Str("result", res.Result).Str("reason", res.Reason).Msg("campaña no enviada")
		}
		uc.metrics.CampaignMessages(c.Channel, res.Result, res.Recipients)
		summary.Campaigns = append(summary.Campaigns, res)
	}
	return summary, nil
}

func (uc *DispatchUseCase) dispatch(ctx context.Context, c entity.Campaign, now time.Time) dto.CampaignResultDTO {
	res := dto.CampaignResultDTO{CampaignID: c.ID, Name: c.Name, Channel: c.Channel}

	sched, err := ParseSchedule(c.CronExpression)
	if err != nil {
		res.Result, res.Reason = dto.CampaignSkipped, err.Error()
		return res
	}
	if !IsDue(sched, c.LastRunAt, now, uc.cfg.Tolerance) {
		res.Result = dto.CampaignNotDue
		return res
	}
	if c.Channel != entity.ChannelEmail && c.Channel != entity.ChannelWhatsApp {
		res.Result, res.Reason = dto.CampaignSkipped, fmt.Sprintf("canal %q desconocido", c.Channel)
		return res
	}

	all, ok, err := uc.recipients(ctx, c.Segment, now)
	switch {
	case err != nil:
		res.Result, res.Reason = dto.CampaignFailed, err.Error()
		return res
	case !ok:
		res.Result, res.Reason = dto.CampaignSkipped, fmt.Sprintf("segmento %q desconocido", c.Segment)
		return res
	}
	targets := reachable(all, c.Channel)
	if len(targets) == 0 {
		res.Result, res.Reason = dto.CampaignSkipped, "sin destinatarios"
		return res
	}

	batches := chunk(targets, uc.cfg.BatchSize)
	sent, err := uc.send(ctx, c, batches)
	res.Recipients = sent.recipients
	res.Batches = sent.batches
	switch {
	case err != nil && sent.batches == 0:
		res.Result, res.Reason = dto.CampaignFailed, err.Error()
		return res
	case err != nil:
		// Se registra igual: sin lastRunAt el próximo llamado dentro de la ventana repetiría los lotes enviados.
		res.Result = dto.CampaignPartial
		res.Reason = fmt.Sprintf("%d de %d lotes enviados: %v", sent.batches, len(batches), err)
	default:
		res.Result = dto.CampaignSent
	}

	if err := uc.campaigns.MarkRun(ctx, c.ID, now); err != nil {
		// Los mensajes ya salieron: se informa el resultado aunque no quede registrado.
		uc.log.Error().Err(err).Str("campaign", c.ID).Msg("no se pudo registrar lastRunAt")
		if res.Reason != "" {
			res.Reason += "; "
		}
		res.Reason += "lastRunAt no registrado"
	}
	return res
}

// sendProgress lotes y destinatarios efectivamente enviados.
type sendProgress struct {
	batches    int
	recipients int
}

// send envía los lotes con un límite de lotes por segundo. El primer error cancela el resto;
// lo ya enviado se informa en el progreso.
func (uc *DispatchUseCase) send(ctx context.Context, c entity.Campaign, batches [][]entity.Recipient) (sendProgress, error) {
	limit := rate.Inf
	if uc.cfg.RatePerSecond > 0 {
		limit = rate.Limit(uc.cfg.RatePerSecond)
	}
	limiter := rate.NewLimiter(limit, 1)

	var (
		mu   sync.Mutex
		sent sendProgress
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrentBatches)
	for _, batch := range batches {
		batch := batch
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			var err error
			if c.Channel == entity.ChannelWhatsApp {
				err = uc.sendWhatsApp(gctx, c, batch)
			} else {
				err = uc.sendEmail(gctx, c, batch)
			}
			if err != nil {
				return err
			}
			mu.Lock()
			sent.batches++
			sent.recipients += len(batch)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	return sent, err
}

func (uc *DispatchUseCase) sendEmail(ctx context.Context, c entity.Campaign, batch []entity.Recipient) error {
	if uc.email == nil {
		return errors.New("canal email no configurado")
	}
	msgs := make([]ports.EmailMessage, 0, len(batch))
	for _, r := range batch {
		msgs = append(msgs, ports.EmailMessage{
			From:    uc.cfg.From,
			To:      strings.TrimSpace(r.Email),
			Subject: c.Subject,
			Body:    c.Body,
		})
	}
	return uc.email.SendBatch(ctx, msgs)
}

func (uc *DispatchUseCase) sendWhatsApp(ctx context.Context, c entity.Campaign, batch []entity.Recipient) error {
	if uc.whatsapp == nil {
		return errors.New("canal whatsapp no configurado")
	}
	msgs := make([]ports.WhatsAppMessage, 0, len(batch))
	for _, r := range batch {
		msgs = append(msgs, ports.WhatsAppMessage{
			CampaignID: c.ID,
			To:         strings.TrimSpace(r.Phone),
			Name:       r.Name,
			Body:       c.Body,
		})
	}
	return uc.whatsapp.SendBatch(ctx, msgs)
}
