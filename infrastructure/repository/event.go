// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
)

const (
	eventsTable = "campaign_events ce"
)

// EventRepository lê os eventos brutos registrados pela plataforma
type EventRepository interface {
	ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.RawEvent, error)
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

func (r *eventRepository) ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.RawEvent, error) {
	where := squirrel.And{
		squirrel.GtOrEq{"ce.occurred_at": query.StartDate},
		squirrel.Lt{"ce.occurred_at": query.EndBefore},
	}

	if query.EntityID != "" {
		where = append(where, squirrel.Eq{"ce.entity_id": query.EntityID})
	}

	if len(query.Kinds) > 0 {
		kinds := make([]string, 0, len(query.Kinds))
		for _, kind := range query.Kinds {
			kinds = append(kinds, string(kind))
		}
		where = append(where, squirrel.Eq{"ce.kind": kinds})
	}

	sqlQuery, args, err := squirrel.
		Select("ce.id", "ce.kind", "ce.entity_id", "ce.occurred_at", "ce.value").
		From(eventsTable).
		Where(where).
		OrderBy("ce.occurred_at ASC", "ce.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]domain.RawEvent, 0)
	for rows.Next() {
		var (
			event    domain.RawEvent
			kind     string
			entityID sql.NullString
			value    sql.NullFloat64
		)

		if err := rows.Scan(&event.ID, &kind, &entityID, &event.OccurredAt, &value); err != nil {
			return nil, fmt.Errorf("erro ao escanear evento: %w", err)
		}

		// entity_id nulo vira chave vazia e é recusado na agregação
		event.EntityID = entityID.String
		event.Kind = domain.EventKind(kind)
		if value.Valid {
			v := value.Float64
			event.Value = &v
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}
