package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Petfood-admin/internal/application/ports"
)

// ── SMTP ──────────────────────────────────────────────────────────────────────

type sentMail struct {
	from string
	to   []string
	raw  string
}

type fakeConn struct {
	sent   []sentMail
	closed bool
	failAt int
}

func (c *fakeConn) Send(from string, to []string, msg io.WriterTo) error {
	if c.failAt > 0 && len(c.sent)+1 == c.failAt {
		return errors.New("550 mailbox unavailable")
	}
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return err
	}
	c.sent = append(c.sent, sentMail{from: from, to: to, raw: buf.String()})
	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

type fakeDialer struct {
	conn  *fakeConn
	dials int
	err   error
}

func (d *fakeDialer) Dial() (gomail.SendCloser, error) {
	d.dials++
	if d.err != nil {
		return nil, d.err
	}
	return d.conn, nil
}

func TestSMTPSender_UnaConexionPorLote(t *testing.T) {
	d := &fakeDialer{conn: &fakeConn{}}
	s := &SMTPSender{dialer: d, from: "reportes@petfood.test"}

	err := s.SendBatch(context.Background(), []ports.EmailMessage{
		{To: "a@petfood.test", Subject: "Hola", Body: "uno"},
		{From: "promos@petfood.test", To: "b@petfood.test", Subject: "Hola", Body: "dos"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, d.dials)
	assert.True(t, d.conn.closed)
	require.Len(t, d.conn.sent, 2)
	assert.Equal(t, "reportes@petfood.test", d.conn.sent[0].from)
	assert.Equal(t, []string{"a@petfood.test"}, d.conn.sent[0].to)
	assert.Contains(t, d.conn.sent[0].raw, "Subject: Hola")
	assert.Equal(t, "promos@petfood.test", d.conn.sent[1].from)
}

func TestSMTPSender_Errores(t *testing.T) {
	t.Run("lote vacío no conecta", func(t *testing.T) {
		d := &fakeDialer{conn: &fakeConn{}}
		require.NoError(t, (&SMTPSender{dialer: d}).SendBatch(context.Background(), nil))
		assert.Zero(t, d.dials)
	})
	t.Run("falla al conectar", func(t *testing.T) {
		d := &fakeDialer{err: errors.New("connection refused")}
		err := (&SMTPSender{dialer: d}).SendBatch(context.Background(), []ports.EmailMessage{{To: "a@b.test"}})
		assert.ErrorContains(t, err, "connection refused")
	})
	t.Run("corta en el primer error", func(t *testing.T) {
		d := &fakeDialer{conn: &fakeConn{failAt: 2}}
		err := (&SMTPSender{dialer: d, from: "x@b.test"}).SendBatch(context.Background(), []ports.EmailMessage{
			{To: "a@b.test"}, {To: "b@b.test"}, {To: "c@b.test"},
		})
		assert.ErrorContains(t, err, "b@b.test")
		assert.Len(t, d.conn.sent, 1)
	})
	t.Run("contexto cancelado", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		d := &fakeDialer{conn: &fakeConn{}}
		err := (&SMTPSender{dialer: d, from: "x@b.test"}).SendBatch(ctx, []ports.EmailMessage{{To: "a@b.test"}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// ── RabbitMQ ──────────────────────────────────────────────────────────────────

type published struct {
	key string
	msg amqp.Publishing
}

type fakeChannel struct {
	published []published
	closed    bool
	err       error
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, published{key: key, msg: msg})
	return nil
}

func (c *fakeChannel) IsClosed() bool { return c.closed }

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

// opener entrega channels nuevos y cuenta cuántos se abrieron.
type opener struct {
	opened []*fakeChannel
	err    error
}

func (o *opener) open() (amqpChannel, error) {
	if o.err != nil {
		return nil, o.err
	}
	ch := &fakeChannel{}
	o.opened = append(o.opened, ch)
	return ch, nil
}

func newTestPublisher(o *opener, chs ...amqpChannel) *WhatsAppPublisher {
	return &WhatsAppPublisher{pool: newChannelPool(1, chs...), queue: "whatsapp_outbound", open: o.open}
}

func TestWhatsAppPublisher_SendBatch(t *testing.T) {
	ch := &fakeChannel{}
	o := &opener{}
	p := newTestPublisher(o, ch)

	err := p.SendBatch(context.Background(), []ports.WhatsAppMessage{
		{CampaignID: "c1", To: "+5491100001111", Name: "Ana", Body: "Promo"},
		{CampaignID: "c1", To: "+5491100002222", Name: "Luis", Body: "Promo"},
	})
	require.NoError(t, err)
	require.Len(t, ch.published, 2)

	first := ch.published[0]
	assert.Equal(t, "whatsapp_outbound", first.key)
	assert.Equal(t, "application/json", first.msg.ContentType)
	assert.Equal(t, amqp.Persistent, first.msg.DeliveryMode)
	assert.NotEmpty(t, first.msg.MessageId)

	var got ports.WhatsAppMessage
	require.NoError(t, json.Unmarshal(first.msg.Body, &got))
	assert.Equal(t, "+5491100001111", got.To)

	// El channel vuelve al pool y no se abrió ninguno nuevo.
	again, err := p.pool.get(context.Background())
	require.NoError(t, err)
	assert.Same(t, ch, again)
	assert.Empty(t, o.opened)
}

func TestWhatsAppPublisher_ChannelCaidoSeReemplaza(t *testing.T) {
	broken := &fakeChannel{err: amqp.ErrClosed}
	o := &opener{}
	p := newTestPublisher(o, broken)
	msgs := []ports.WhatsAppMessage{{CampaignID: "c1", To: "+5491100001111", Body: "Promo"}}

	err := p.SendBatch(context.Background(), msgs)
	assert.ErrorIs(t, err, amqp.ErrClosed)
	assert.True(t, broken.closed, "el channel que falló no vuelve al pool")

	require.NoError(t, p.SendBatch(context.Background(), msgs))
	require.Len(t, o.opened, 1)
	assert.Len(t, o.opened[0].published, 1)
	assert.Empty(t, broken.published)
}

func TestWhatsAppPublisher_ChannelCerradoPorElBroker(t *testing.T) {
	closed := &fakeChannel{closed: true}
	o := &opener{}
	p := newTestPublisher(o, closed)

	require.NoError(t, p.SendBatch(context.Background(), []ports.WhatsAppMessage{{To: "1"}}))
	require.Len(t, o.opened, 1)
	assert.Len(t, o.opened[0].published, 1)
	assert.Empty(t, closed.published)
}

func TestWhatsAppPublisher_SinConexionNoPierdeElLugar(t *testing.T) {
	o := &opener{err: errors.New("connection refused")}
	p := newTestPublisher(o)

	err := p.SendBatch(context.Background(), []ports.WhatsAppMessage{{To: "1"}})
	assert.ErrorContains(t, err, "connection refused")

	// RabbitMQ vuelve: el lugar vacío se completa en el siguiente envío.
	o.err = nil
	require.NoError(t, p.SendBatch(context.Background(), []ports.WhatsAppMessage{{To: "1"}}))
	assert.Len(t, o.opened, 1)
}

func TestWhatsAppPublisher_PoolAgotado(t *testing.T) {
	p := &WhatsAppPublisher{pool: newChannelPool(0), queue: "q"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.SendBatch(ctx, []ports.WhatsAppMessage{{To: "1"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWhatsAppPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &WhatsAppPublisher{pool: newChannelPool(2, ch)}
	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
