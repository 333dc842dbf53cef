package ports

import "context"

// EmailMessage payload de un email de texto plano. From vacío = remitente configurado.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	Body    string
}

// EmailSender puerto de salida para envío de emails en lote.
// La entrega y los reintentos son responsabilidad del proveedor.
type EmailSender interface {
	SendBatch(ctx context.Context, msgs []EmailMessage) error
}

// WhatsAppMessage mensaje saliente de WhatsApp.
type WhatsAppMessage struct {
	CampaignID string `json:"campaign_id"`
	To         string `json:"to"`
	Name       string `json:"name"`
	Body       string `json:"body"`
}

// WhatsAppSender puerto de salida para mensajes de WhatsApp en lote.
type WhatsAppSender interface {
	SendBatch(ctx context.Context, msgs []WhatsAppMessage) error
}
