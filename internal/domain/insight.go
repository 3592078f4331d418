package domain

import "time"

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DailyPerformance é uma linha do gráfico diário de uma campanha
type DailyPerformance struct {
	Date    string           `json:"date"` // yyyy-mm-dd
	Totals  Counters         `json:"totals"`
	Metrics DerivedMetricSet `json:"metrics"`
}

// CampaignPerformanceResponse agrupa a série diária de uma campanha
type CampaignPerformanceResponse struct {
	CampaignID string             `json:"campaign_id"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Days       []DailyPerformance `json:"days"`
}

// CampaignSummary é o consolidado do período de uma campanha
type CampaignSummary struct {
	CampaignID string           `json:"campaign_id"`
	StartDate  string           `json:"start_date"`
	EndDate    string           `json:"end_date"`
	Events     int64            `json:"events"`
	Totals     Counters         `json:"totals"`
	Metrics    DerivedMetricSet `json:"metrics"`
}

// SnapshotDelta é a variação percentual de um campo entre os dois últimos períodos
type SnapshotDelta struct {
	Field      SnapshotField `json:"field"`
	Current    float64       `json:"current"`
	Previous   float64       `json:"previous"`
	Percent    float64       `json:"percent"`
	Comparable bool          `json:"comparable"` // false: esconder a variação no painel
}

// DashboardOverview é a resposta do painel principal
type DashboardOverview struct {
	Days      int              `json:"days"`
	Snapshots []PeriodSnapshot `json:"snapshots"`
	Deltas    []SnapshotDelta  `json:"deltas"`
}
