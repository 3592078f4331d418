package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/postgres"
)

// DayActivity são os contadores operacionais de um dia que não vêm de eventos
type DayActivity struct {
	NewCustomers        int64
	DeliveriesCompleted int64
	Commission          float64
}

// ActivityRepository lê os contadores operacionais (clientes, entregas, comissão) em [start, end)
type ActivityRepository interface {
	GetDayActivity(ctx context.Context, start, end time.Time) (*DayActivity, error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) GetDayActivity(ctx context.Context, start, end time.Time) (*DayActivity, error) {
	activity := &DayActivity{}

	customers, err := count(ctx, r.conn, "customers cu", squirrel.And{
		squirrel.GtOrEq{"cu.created_at": start},
		squirrel.Lt{"cu.created_at": end},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	activity.NewCustomers = customers

	// comissão é calculada pela plataforma e gravada no pedido; aqui só somamos
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(o.commission), 0)").
		From("orders o").
		Where(squirrel.And{
			squirrel.Eq{"o.status": "DELIVERED"},
			squirrel.GtOrEq{"o.delivered_at": start},
			squirrel.Lt{"o.delivered_at": end},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&activity.DeliveriesCompleted, &activity.Commission)
	if err != nil {
		return nil, fmt.Errorf("erro ao somar entregas: %w", err)
	}

	return activity, nil
}
