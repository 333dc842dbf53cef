package campaign

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Petfood-admin/internal/application/dto"
	"github.com/jhoicas/Petfood-admin/internal/application/ports"
	"github.com/jhoicas/Petfood-admin/internal/domain"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeCampaignRepo struct {
	campaigns []entity.Campaign
	runs      map[string]time.Time
}

func (f *fakeCampaignRepo) ListActive(context.Context) ([]entity.Campaign, error) {
	return f.campaigns, nil
}

func (f *fakeCampaignRepo) MarkRun(_ context.Context, id string, at time.Time) error {
	if f.runs == nil {
		f.runs = map[string]time.Time{}
	}
	f.runs[id] = at
	return nil
}

type fakeClientRepo struct {
	all         []entity.Recipient
	since       time.Time
	before      time.Time
	activeCalls int
}

func (f *fakeClientRepo) ListAll(context.Context) ([]entity.Recipient, error) { return f.all, nil }

func (f *fakeClientRepo) ListOrderedSince(_ context.Context, since time.Time) ([]entity.Recipient, error) {
	f.since = since
	f.activeCalls++
	return f.all[:1], nil
}

func (f *fakeClientRepo) ListLastOrderBefore(_ context.Context, before time.Time) ([]entity.Recipient, error) {
	f.before = before
	return nil, nil
}

type fakeOutletRepo struct{ outlets []*entity.Outlet }

func (f *fakeOutletRepo) Create(context.Context, *entity.Outlet) error { return nil }
func (f *fakeOutletRepo) GetByID(context.Context, string) (*entity.Outlet, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeOutletRepo) ListActive(context.Context) ([]*entity.Outlet, error) { return f.outlets, nil }
func (f *fakeOutletRepo) Update(context.Context, *entity.Outlet) error         { return nil }
func (f *fakeOutletRepo) Deactivate(context.Context, string) error             { return nil }
func (f *fakeOutletRepo) ReplaceMonthlyKilos(context.Context, string, []entity.MonthlyKilos) error {
	return nil
}
func (f *fakeOutletRepo) SetMonthlyKilos(context.Context, string, entity.MonthlyKilos) error {
	return nil
}

// fakeEmail devuelve err a partir del lote número failFrom (0 = desde el primero).
type fakeEmail struct {
	mu       sync.Mutex
	batches  [][]ports.EmailMessage
	err      error
	failFrom int
	calls    int
}

func (f *fakeEmail) SendBatch(_ context.Context, msgs []ports.EmailMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil && f.calls > f.failFrom {
		return f.err
	}
	f.batches = append(f.batches, msgs)
	return nil
}

type fakeWhatsApp struct {
	mu   sync.Mutex
	msgs []ports.WhatsAppMessage
}

func (f *fakeWhatsApp) SendBatch(_ context.Context, msgs []ports.WhatsAppMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msgs...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var runAt = time.Date(2026, time.March, 20, 10, 3, 0, 0, time.UTC)

func recipients(n int) []entity.Recipient {
	out := make([]entity.Recipient, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Recipient{
			Name:  fmt.Sprintf("Cliente %d", i),
			Email: fmt.Sprintf("cliente%d@petfood.test", i),
			Phone: fmt.Sprintf("+54911000%04d", i),
		})
	}
	return out
}

type dispatchFixture struct {
	campaigns *fakeCampaignRepo
	clients   *fakeClientRepo
	email     *fakeEmail
	whatsapp  *fakeWhatsApp
	uc        *DispatchUseCase
}

func newDispatchFixture(campaigns ...entity.Campaign) *dispatchFixture {
	f := &dispatchFixture{
		campaigns: &fakeCampaignRepo{campaigns: campaigns},
		clients:   &fakeClientRepo{all: recipients(5)},
		email:     &fakeEmail{},
		whatsapp:  &fakeWhatsApp{},
	}
	outlets := &fakeOutletRepo{outlets: []*entity.Outlet{
		{ID: "o1", Name: "Forrajería Norte", Contact: entity.OutletContact{Phone: "+5491100001111"}},
		{ID: "o2", Name: "Sin teléfono"},
	}}
	f.uc = NewDispatchUseCase(f.campaigns, f.clients, outlets, f.email, f.whatsapp,
		Config{Tolerance: 5 * time.Minute, BatchSize: 2, From: "promos@petfood.test"}, nil, logger.Nop())
	f.uc.now = func() time.Time { return runAt }
	return f
}

func emailCampaign(id, cronExpr, segment string) entity.Campaign {
	return entity.Campaign{ID: id, Name: "Promo " + id, Channel: entity.ChannelEmail, CronExpression: cronExpr,
		Segment: segment, Subject: "Promo", Body: "20% off", IsActive: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_EnviaEnLotesYRegistraEjecucion(t *testing.T) {
	f := newDispatchFixture(emailCampaign("c1", "0 10 * * *", entity.SegmentAll))

	res, err := f.uc.Run(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 1, res.Evaluated)
	assert.Equal(t, 1, res.Sent)

	c := res.Campaigns[0]
	assert.Equal(t, dto.CampaignSent, c.Result)
	assert.Equal(t, 5, c.Recipients)
	assert.Equal(t, 3, c.Batches)

	require.Len(t, f.email.batches, 3)
	total := 0
	for _, b := range f.email.batches {
		assert.LessOrEqual(t, len(b), 2)
		total += len(b)
		assert.Equal(t, "promos@petfood.test", b[0].From)
		assert.Equal(t, "Promo", b[0].Subject)
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, runAt, f.campaigns.runs["c1"])
}

func TestRun_NoVencidaYCronInvalido(t *testing.T) {
	f := newDispatchFixture(
		emailCampaign("tarde", "43 9 * * *", entity.SegmentAll), // hace 20 minutos
		emailCampaign("rota", "cada lunes", entity.SegmentAll),
		emailCampaign("ok", "0 10 * * *", entity.SegmentAll),
	)

	res, err := f.uc.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Campaigns, 3)
	assert.Equal(t, dto.CampaignNotDue, res.Campaigns[0].Result)
	assert.Equal(t, dto.CampaignSkipped, res.Campaigns[1].Result)
	assert.NotEmpty(t, res.Campaigns[1].Reason)
	assert.Equal(t, dto.CampaignSent, res.Campaigns[2].Result, "una campaña rota no frena a las demás")
	assert.Equal(t, 1, res.Sent)
	assert.NotContains(t, f.campaigns.runs, "tarde")
	assert.NotContains(t, f.campaigns.runs, "rota")
}

func TestRun_YaEjecutadaEnLaVentana(t *testing.T) {
	last := runAt.Add(-2 * time.Minute)
	c := emailCampaign("c1", "0 10 * * *", entity.SegmentAll)
	c.LastRunAt = &last
	f := newDispatchFixture(c)

	res, err := f.uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CampaignNotDue, res.Campaigns[0].Result)
	assert.Empty(t, f.email.batches)
}

func TestRun_Segmentos(t *testing.T) {
	f := newDispatchFixture(
		emailCampaign("activos", "0 10 * * *", entity.SegmentActive),
		emailCampaign("inactivos", "0 10 * * *", entity.SegmentInactive),
		emailCampaign("raro", "0 10 * * *", "vip"),
	)

	res, err := f.uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CampaignSent, res.Campaigns[0].Result)
	assert.Equal(t, 1, res.Campaigns[0].Recipients)
	assert.Equal(t, runAt.Add(-30*24*time.Hour), f.clients.since)

	assert.Equal(t, dto.CampaignSkipped, res.Campaigns[1].Result, "segmento vacío")
	assert.Equal(t, runAt.Add(-60*24*time.Hour), f.clients.before)

	assert.Equal(t, dto.CampaignSkipped, res.Campaigns[2].Result)
}

func TestRun_WhatsAppMayoristas(t *testing.T) {
	c := emailCampaign("wa", "0 10 * * *", entity.SegmentMayoristas)
	c.Channel = entity.ChannelWhatsApp
	f := newDispatchFixture(c)

	res, err := f.uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CampaignSent, res.Campaigns[0].Result)
	require.Len(t, f.whatsapp.msgs, 1)
	assert.Equal(t, ports.WhatsAppMessage{CampaignID: "wa", To: "+5491100001111", Name: "Forrajería Norte", Body: "20% off"}, f.whatsapp.msgs[0])
}

func TestRun_ErrorDeEnvio(t *testing.T) {
	f := newDispatchFixture(emailCampaign("c1", "0 10 * * *", entity.SegmentAll))
	f.email.err = errors.New("smtp caído")

	res, err := f.uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CampaignFailed, res.Campaigns[0].Result)
	assert.Contains(t, res.Campaigns[0].Reason, "smtp caído")
	assert.Empty(t, f.campaigns.runs)
}

func TestRun_EnvioParcialRegistraEjecucion(t *testing.T) {
	f := newDispatchFixture(emailCampaign("c1", "0 10 * * *", entity.SegmentAll))
	f.email.err = errors.New("smtp caído")
	f.email.failFrom = 2

	res, err := f.uc.Run(context.Background())
	require.NoError(t, err)
	c := res.Campaigns[0]
	assert.Equal(t, dto.CampaignPartial, c.Result)
	assert.Equal(t, 2, c.Batches)
	sent := 0
	for _, b := range f.email.batches {
		sent += len(b)
	}
	assert.Equal(t, sent, c.Recipients)
	assert.Contains(t, c.Reason, "2 de 3 lotes enviados")
	assert.Contains(t, c.Reason, "smtp caído")
	assert.Equal(t, 0, res.Sent)

	// Registrada: un segundo llamado dentro de la ventana no repite los lotes.
	assert.Equal(t, runAt, f.campaigns.runs["c1"])
	f.campaigns.campaigns[0].LastRunAt = &runAt
	res, err = f.uc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.CampaignNotDue, res.Campaigns[0].Result)
	assert.Equal(t, 3, f.email.calls)
}

func TestReachable_SinRepetidos(t *testing.T) {
	rs := []entity.Recipient{
		{Email: "A@x.test", Phone: "1"},
		{Email: "a@x.test", Phone: "2"},
		{Email: "", Phone: "1"},
	}
	assert.Len(t, reachable(rs, entity.ChannelEmail), 1)
	assert.Len(t, reachable(rs, entity.ChannelWhatsApp), 2)
}
