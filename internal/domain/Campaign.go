package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "ACTIVE"
	CampaignStatusPaused CampaignStatus = "PAUSED"
	CampaignStatusEnded  CampaignStatus = "ENDED"
)

// Campaign é uma campanha promocional de loja com seus totais acumulados
type Campaign struct {
	ID          string         `json:"id"`
	StoreID     string         `json:"store_id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Status      CampaignStatus `json:"status"`
	Impressions int64          `json:"impressions"`
	Clicks      int64          `json:"clicks"`
	Conversions int64          `json:"conversions"`
	Spend       float64        `json:"spend"`
	StartsAt    *time.Time     `json:"starts_at"`
	EndsAt      *time.Time     `json:"ends_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (c Campaign) Counters() Counters {
	return Counters{
		Impressions: c.Impressions,
		Clicks:      c.Clicks,
		Conversions: c.Conversions,
		Spend:       c.Spend,
	}
}
