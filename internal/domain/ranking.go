package domain

// RankedEntity é uma entidade com a métrica usada na ordenação e sua posição (1 = primeiro)
type RankedEntity[T any] struct {
	Entity   T       `json:"entity"`
	Metric   float64 `json:"metric"`
	Position int     `json:"position"`
}
