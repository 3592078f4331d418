package insighting

import (
	"context"

	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
)

// EventSource é a origem dos eventos brutos (banco ou API da plataforma)
type EventSource interface {
	ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.RawEvent, error)
}

// Insighter define os relatórios de desempenho de campanha
type Insighter interface {
	// GetCampaignDailyPerformance retorna uma linha por dia do período, em ordem de data
	GetCampaignDailyPerformance(ctx context.Context, campaignID string, filters *domain.InsightFilters) (*domain.CampaignPerformanceResponse, error)

	// GetCampaignSummary retorna o consolidado do período
	GetCampaignSummary(ctx context.Context, campaignID string, filters *domain.InsightFilters) (*domain.CampaignSummary, error)
}
