package platform

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
)

// EventSource implementa a leitura de eventos brutos pela API da plataforma,
// paginando até a última página.
type EventSource struct {
	client   Client
	pageSize int
}

func New(client Client) *EventSource {
	return &EventSource{
		client:   client,
		pageSize: pageSize,
	}
}

func (s *EventSource) ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.RawEvent, error) {
	kinds := make([]string, 0, len(query.Kinds))
	for _, kind := range query.Kinds {
		kinds = append(kinds, string(kind))
	}

	events := make([]domain.RawEvent, 0)
	for offset := 0; ; offset += s.pageSize {
		rows, err := s.client.GetEvents(ctx, EventsParams{
			EntityID:  query.EntityID,
			Kinds:     kinds,
			StartDate: query.StartDate,
			EndBefore: query.EndBefore,
			Offset:    offset,
			Limit:     s.pageSize,
		})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao buscar eventos na plataforma")
		}

		for _, row := range rows {
			events = append(events, toRawEvent(row))
		}

		if len(rows) < s.pageSize {
			break
		}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"entity_id": query.EntityID,
		"events":    len(events),
	}).Debug("Eventos carregados da plataforma")

	return events, nil
}

func toRawEvent(row EventRow) domain.RawEvent {
	return domain.RawEvent{
		ID:         row.ID,
		Kind:       domain.EventKind(row.Kind),
		EntityID:   row.EntityID,
		OccurredAt: row.OccurredAt,
		Value:      row.Value,
	}
}
