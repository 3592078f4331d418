package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
)

const (
	snapshotsTable = "daily_snapshots ds"
)

var snapshotColumns = []string{
	"ds.id",
	"ds.date",
	"ds.revenue",
	"ds.orders",
	"ds.active_partners",
	"ds.stores_onboarded",
	"ds.new_customers",
	"ds.deliveries_completed",
	"ds.commission",
	"ds.created_at",
	"ds.updated_at",
}

// SnapshotRepository persiste a série diária pré-agregada do painel
type SnapshotRepository interface {
	ListLatest(ctx context.Context, days int) ([]domain.PeriodSnapshot, error)
	ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]domain.PeriodSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.PeriodSnapshot) error
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// ListLatest retorna os últimos snapshots em ordem cronológica crescente
func (r *snapshotRepository) ListLatest(ctx context.Context, days int) ([]domain.PeriodSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(snapshotColumns...).
		From(snapshotsTable).
		OrderBy("ds.date DESC").
		Limit(uint64(days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshots, err := r.query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}

	// a consulta vem da mais recente para a mais antiga
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	return snapshots, nil
}

func (r *snapshotRepository) ListByDateRange(ctx context.Context, startDate, endDate time.Time) ([]domain.PeriodSnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where(squirrel.And{
			squirrel.GtOrEq{"ds.date": startDate.Format(time.DateOnly)},
			squirrel.LtOrEq{"ds.date": endDate.Format(time.DateOnly)},
		}).
		OrderBy("ds.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, sqlQuery, args...)
}

func (r *snapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.PeriodSnapshot) error {
	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("daily_snapshots").
		Columns(
			"date",
			"revenue",
			"orders",
			"active_partners",
			"stores_onboarded",
			"new_customers",
			"deliveries_completed",
			"commission",
		).
		Values(
			snapshot.Date.Format(time.DateOnly),
			snapshot.Revenue,
			snapshot.Orders,
			snapshot.ActivePartners,
			snapshot.StoresOnboarded,
			snapshot.NewCustomers,
			snapshot.DeliveriesCompleted,
			snapshot.Commission,
		).
		Suffix(`
		ON CONFLICT (date) DO UPDATE SET
			revenue = EXCLUDED.revenue,
			orders = EXCLUDED.orders,
			active_partners = EXCLUDED.active_partners,
			stores_onboarded = EXCLUDED.stores_onboarded,
			new_customers = EXCLUDED.new_customers,
			deliveries_completed = EXCLUDED.deliveries_completed,
			commission = EXCLUDED.commission,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&snapshot.ID); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *snapshotRepository) query(ctx context.Context, sqlQuery string, args ...interface{}) ([]domain.PeriodSnapshot, error) {
	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]domain.PeriodSnapshot, 0)
	for rows.Next() {
		var s domain.PeriodSnapshot
		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.Revenue,
			&s.Orders,
			&s.ActivePartners,
			&s.StoresOnboarded,
			&s.NewCustomers,
			&s.DeliveriesCompleted,
			&s.Commission,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}
