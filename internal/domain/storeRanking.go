package domain

import "time"

type StoreRankingResponse struct {
	Month      string             `json:"month"`
	Ranking    []StoreRankingItem `json:"ranking"`
	LastUpdate time.Time          `json:"last_update"`
}

type StoreRankingItem struct {
	ID               int       `json:"id"`
	StoreID          string    `json:"store_id"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	StoreName        string    `json:"store_name"`
	Revenue          float64   `json:"revenue"`
	Orders           int64     `json:"orders"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	BatchID          string    `json:"batch_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
