package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/Petfood-admin/internal/application/ports"
)

var _ ports.WhatsAppSender = (*WhatsAppPublisher)(nil)

// amqpChannel lo que el publicador usa de *amqp.Channel.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// channelPool pool de channels; un channel AMQP no se comparte entre goroutines.
// Un lugar vacío (nil) se completa con un channel nuevo la próxima vez que se toma.
type channelPool struct {
	channels chan amqpChannel
}

func newChannelPool(size int, chs ...amqpChannel) *channelPool {
	p := &channelPool{channels: make(chan amqpChannel, size)}
	for i := 0; i < size; i++ {
		var ch amqpChannel
		if i < len(chs) {
			ch = chs[i]
		}
		p.channels <- ch
	}
	return p
}

func (p *channelPool) get(ctx context.Context) (amqpChannel, error) {
	select {
	case ch := <-p.channels:
		return ch, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *channelPool) put(ch amqpChannel) { p.channels <- ch }

func (p *channelPool) close() {
	for {
		select {
		case ch := <-p.channels:
			if ch != nil {
				_ = ch.Close()
			}
		default:
			return
		}
	}
}

// WhatsAppPublisher publica los mensajes de WhatsApp como JSON persistente en una cola durable.
// Si RabbitMQ se reinicia, los channels cerrados se descartan y se reabren, redialando la conexión.
type WhatsAppPublisher struct {
	url   string
	queue string
	pool  *channelPool
	open  func() (amqpChannel, error)

	mu   sync.Mutex
	conn *amqp.Connection
}

// NewWhatsAppPublisher conecta a RabbitMQ, declara la cola y abre poolSize channels.
func NewWhatsAppPublisher(url, queue string, poolSize int) (*WhatsAppPublisher, error) {
	if poolSize <= 0 {
		poolSize = 2
	}
	p := &WhatsAppPublisher{url: url, queue: queue}
	p.open = p.openChannel

	chs := make([]amqpChannel, 0, poolSize)
	for i := 0; i < poolSize; i++ {
		ch, err := p.open()
		if err != nil {
			for _, c := range chs {
				_ = c.Close()
			}
			p.closeConn()
			return nil, err
		}
		chs = append(chs, ch)
	}
	p.pool = newChannelPool(poolSize, chs...)
	return p, nil
}

// openChannel abre un channel y declara la cola. Redial si la conexión se cayó.
func (p *WhatsAppPublisher) openChannel() (amqpChannel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("rabbitmq: conectar: %w", err)
		}
		p.conn = conn
	}
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: abrir channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("rabbitmq: declarar cola %s: %w", p.queue, err)
	}
	return ch, nil
}

// acquire toma un channel del pool, reemplazando el lugar vacío o el channel cerrado.
func (p *WhatsAppPublisher) acquire(ctx context.Context) (amqpChannel, error) {
	ch, err := p.pool.get(ctx)
	if err != nil {
		return nil, err
	}
	if ch != nil && !ch.IsClosed() {
		return ch, nil
	}
	fresh, err := p.open()
	if err != nil {
		p.pool.put(nil)
		return nil, err
	}
	return fresh, nil
}

// discard cierra un channel que falló y deja su lugar vacío en el pool.
func (p *WhatsAppPublisher) discard(ch amqpChannel) {
	_ = ch.Close()
	p.pool.put(nil)
}

// SendBatch publica cada mensaje en la cola. La entrega al destinatario la resuelve el consumidor.
func (p *WhatsAppPublisher) SendBatch(ctx context.Context, msgs []ports.WhatsAppMessage) error {
	bodies := make([][]byte, 0, len(msgs))
	for _, msg := range msgs {
		body, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("rabbitmq: serializar mensaje: %w", err)
		}
		bodies = append(bodies, body)
	}

	ch, err := p.acquire(ctx)
	if err != nil {
		return err
	}
	for i, body := range bodies {
		err := ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Type:         "whatsapp.campaign",
			Body:         body,
		})
		if err != nil {
			p.discard(ch)
			return fmt.Errorf("rabbitmq: publicar a %s: %w", msgs[i].To, err)
		}
	}
	if ch.IsClosed() {
		p.discard(ch)
		return nil
	}
	p.pool.put(ch)
	return nil
}

// Close cierra los channels y la conexión.
func (p *WhatsAppPublisher) Close() error {
	if p.pool != nil {
		p.pool.close()
	}
	return p.closeConn()
}

func (p *WhatsAppPublisher) closeConn() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}
