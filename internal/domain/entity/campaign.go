package entity

import "time"

// Canales de envío de campañas.
const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
)

// Segmentos de clientes a los que puede apuntar una campaña.
const (
	SegmentAll        = "all"
	SegmentActive     = "active"
	SegmentInactive   = "inactive"
	SegmentMayoristas = "mayoristas"
)

// Campaign campaña de marketing programada con una expresión cron.
type Campaign struct {
	ID             string
	Name           string
	Channel        string // email | whatsapp
	CronExpression string
	Segment        string
	Subject        string
	Body           string
	IsActive       bool
	LastRunAt      *time.Time
}

// Recipient destinatario de una campaña, resultado de la segmentación de clientes.
type Recipient struct {
	Name  string
	Email string
	Phone string
}
