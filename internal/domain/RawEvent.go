// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// EventKind identifica o tipo de ocorrência registrada pela plataforma
type EventKind string

const (
	EventKindImpression EventKind = "impression"
	EventKindClick      EventKind = "click"
	EventKindConversion EventKind = "conversion"
	EventKindOrder      EventKind = "order"
)

// EventKinds lista os tipos de evento contabilizados pelo agregador, na ordem de exibição
var EventKinds = []EventKind{
	EventKindImpression,
	EventKindClick,
	EventKindConversion,
	EventKindOrder,
}

func (k EventKind) IsValid() bool {
	switch k {
	case EventKindImpression, EventKindClick, EventKindConversion, EventKindOrder:
		return true
	}
	return false
}

// RawEvent representa uma ocorrência observada (impressão, clique, conversão, pedido).
// É produzido pela fonte de dados externa e nunca alterado depois de lido.
type RawEvent struct {
	ID         string    `json:"id"`
	Kind       EventKind `json:"kind"`
	EntityID   string    `json:"entity_id"` // campanha ou loja
	OccurredAt time.Time `json:"occurred_at"`
	Value      *float64  `json:"value,omitempty"` // valor monetário, quando houver
}

// EventQuery define o recorte de eventos buscado na fonte de dados
type EventQuery struct {
	EntityID  string
	Kinds     []EventKind
	StartDate time.Time
	EndBefore time.Time // exclusivo: [StartDate, EndBefore)
}
