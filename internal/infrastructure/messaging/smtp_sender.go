// Package messaging implementa los puertos de salida de mensajes: email por SMTP (gomail)
// y WhatsApp a través de una cola de RabbitMQ que consume el proveedor.
package messaging

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Petfood-admin/internal/application/ports"
	"github.com/jhoicas/Petfood-admin/pkg/config"
)

var _ ports.EmailSender = (*SMTPSender)(nil)

// dialer abre una conexión SMTP; *gomail.Dialer lo implementa.
type dialer interface {
	Dial() (gomail.SendCloser, error)
}

// SMTPSender envía cada lote por una única conexión SMTP.
type SMTPSender struct {
	dialer dialer
	from   string
}

// NewSMTPSender construye el adaptador a partir de la configuración SMTP.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendBatch envía los mensajes en orden y corta en el primer error o si ctx se cancela.
func (s *SMTPSender) SendBatch(ctx context.Context, msgs []ports.EmailMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	conn, err := s.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp: conectar: %w", err)
	}
	defer conn.Close()

	m := gomail.NewMessage()
	for i, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Reset()
		from := msg.From
		if from == "" {
			from = s.from
		}
		m.SetHeader("From", from)
		m.SetHeader("To", msg.To)
		m.SetHeader("Subject", msg.Subject)
		m.SetBody("text/plain", msg.Body)
		if err := gomail.Send(conn, m); err != nil {
			return fmt.Errorf("smtp: mensaje %d a %s: %w", i, msg.To, err)
		}
	}
	return nil
}
