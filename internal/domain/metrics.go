package domain

// Counters reúne os totais de uma campanha (ou de um bucket) usados no cálculo das razões
type Counters struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Orders      int64   `json:"orders"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

// CountersFromBucket converte um bucket agregado em contadores.
// O gasto vem da soma dos cliques (custo por clique cobrado) e a receita da soma dos pedidos.
func CountersFromBucket(b Bucket) Counters {
	return Counters{
		Impressions: b.Kind(EventKindImpression).Count,
		Clicks:      b.Kind(EventKindClick).Count,
		Conversions: b.Kind(EventKindConversion).Count,
		Orders:      b.Kind(EventKindOrder).Count,
		Spend:       b.Kind(EventKindClick).Sum + b.Kind(EventKindImpression).Sum,
		Revenue:     b.Kind(EventKindOrder).Sum + b.Kind(EventKindConversion).Sum,
	}
}

// Add soma outro conjunto de contadores
func (c *Counters) Add(other Counters) {
	c.Impressions += other.Impressions
	c.Clicks += other.Clicks
	c.Conversions += other.Conversions
	c.Orders += other.Orders
	c.Spend += other.Spend
	c.Revenue += other.Revenue
}

// DerivedMetricSet guarda as razões calculadas a partir dos contadores.
// Uma razão com denominador zero vale 0, nunca NaN ou Inf.
type DerivedMetricSet struct {
	CTR            float64 `json:"ctr"`             // cliques por impressão (%)
	ConversionRate float64 `json:"conversion_rate"` // conversões por clique (%)
	CPC            float64 `json:"cpc"`             // gasto por clique
	ROI            float64 `json:"roi"`             // conversões * 100 / gasto
}
