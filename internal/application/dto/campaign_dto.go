package dto

import "time"

// Resultados posibles del despacho de una campaña.
const (
	CampaignSent    = "sent"
	CampaignNotDue  = "not_due"
	CampaignSkipped = "skipped"
	CampaignFailed  = "failed"
	CampaignPartial = "partial" // algunos lotes salieron antes del error; se registra la ejecución
)

// CampaignResultDTO resultado de una campaña en una ejecución del cron.
type CampaignResultDTO struct {
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Channel    string `json:"channel"`
	Result     string `json:"result"` // sent | partial | not_due | skipped | failed
	Recipients int    `json:"recipients"`
	Batches    int    `json:"batches"`
	Reason     string `json:"reason,omitempty"`
}

// DispatchSummaryDTO respuesta de POST /api/cron/campaigns.
type DispatchSummaryDTO struct {
	RunID     string              `json:"run_id"`
	RanAt     time.Time           `json:"ran_at"`
	Evaluated int                 `json:"evaluated"`
	Sent      int                 `json:"sent"`
	Campaigns []CampaignResultDTO `json:"campaigns"`
}
