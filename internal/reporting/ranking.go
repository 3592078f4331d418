package reporting

import (
	"sort"

	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
)

// DefaultTopN é o tamanho padrão dos rankings do painel
const DefaultTopN = 5

// Rank ordena todas as entidades pela métrica, decrescente, preservando a ordem
// original dos empates. A entrada não é alterada.
func Rank[T any](items []T, metric func(T) float64) []domain.RankedEntity[T] {
	ranked := make([]domain.RankedEntity[T], 0, len(items))
	for _, item := range items {
		ranked = append(ranked, domain.RankedEntity[T]{
			Entity: item,
			Metric: metric(item),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Metric > ranked[j].Metric
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}

	return ranked
}

// TopN retorna as n primeiras entidades de Rank. n <= 0 usa DefaultTopN.
func TopN[T any](items []T, metric func(T) float64, n int) []domain.RankedEntity[T] {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := Rank(items, metric)
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// CampaignROI é a métrica de ranking de campanhas
func CampaignROI(c domain.Campaign) float64 {
	return RankingROI(float64(c.Conversions), c.Spend)
}

// TopCampaignsByROI retorna as n campanhas com maior ROI
func TopCampaignsByROI(campaigns []domain.Campaign, n int) []domain.RankedEntity[domain.Campaign] {
	return TopN(campaigns, CampaignROI, n)
}
