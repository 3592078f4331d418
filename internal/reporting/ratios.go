package reporting

import (
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
)

// Política de denominador zero, por razão:
//
//	RatePercent, CostPerUnit, ROI -> 0 quando o denominador é 0
//	RankingROI                    -> gasto zero é tratado como 1
//
// Nenhuma função retorna NaN ou Inf.

// RatePercent calcula numerator/denominator em porcentagem. Pode passar de 100.
func RatePercent(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return utils.Finite(numerator / denominator * 100)
}

// CostPerUnit calcula o custo unitário (ex: CPC = gasto / cliques)
func CostPerUnit(totalCost, unitCount float64) float64 {
	if unitCount == 0 {
		return 0
	}
	return utils.Finite(totalCost / unitCount)
}

// ROI aproxima o retorno como conversões por unidade de gasto (x100)
func ROI(conversions, spend float64) float64 {
	if spend == 0 {
		return 0
	}
	return utils.Finite(conversions * 100 / spend)
}

// RankingROI é a métrica de ordenação do ranking de campanhas. Campanhas sem gasto
// continuam comparáveis: o gasto zero vira 1.
func RankingROI(conversions, spend float64) float64 {
	if spend == 0 {
		spend = 1
	}
	return utils.Finite(conversions * 100 / spend)
}

// Derive calcula o conjunto de razões a partir dos contadores
func Derive(c domain.Counters) domain.DerivedMetricSet {
	return domain.DerivedMetricSet{
		CTR:            utils.RoundWithTwoDecimalPlace(RatePercent(float64(c.Clicks), float64(c.Impressions))),
		ConversionRate: utils.RoundWithTwoDecimalPlace(RatePercent(float64(c.Conversions), float64(c.Clicks))),
		CPC:            utils.RoundWithTwoDecimalPlace(CostPerUnit(c.Spend, float64(c.Clicks))),
		ROI:            utils.RoundWithTwoDecimalPlace(ROI(float64(c.Conversions), c.Spend)),
	}
}
