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
	storesTable = "stores s"
)

type StoreRepository interface {
	List(ctx context.Context) ([]domain.Store, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Store, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) List(ctx context.Context) ([]domain.Store, error) {
	return r.list(ctx, nil)
}

func (r *storeRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Store, error) {
	if len(ids) == 0 {
		return []domain.Store{}, nil
	}
	return r.list(ctx, squirrel.Eq{"s.id": ids})
}

// CountCreatedBetween conta as lojas cadastradas no intervalo [start, end)
func (r *storeRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return count(ctx, r.conn, "stores s", squirrel.And{
		squirrel.GtOrEq{"s.created_at": start},
		squirrel.Lt{"s.created_at": end},
	})
}

func (r *storeRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Store, error) {
	builder := squirrel.
		Select("s.id", "s.name", "s.city", "s.email", "s.phone", "s.status", "s.created_at").
		From(storesTable).
		OrderBy("s.created_at DESC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)
	if where != nil {
		builder = builder.Where(where)
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]domain.Store, 0)
	for rows.Next() {
		var (
			store  domain.Store
			status string
		)
		if err := rows.Scan(&store.ID, &store.Name, &store.City, &store.Email, &store.Phone, &status, &store.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		store.Status = domain.StoreStatus(status)
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

// count executa SELECT COUNT(*) com o filtro informado
func count(ctx context.Context, conn *postgres.Connection, table string, where squirrel.Sqlizer) (int64, error) {
	sqlQuery, args, err := squirrel.
		Select("COUNT(*)").
		From(table).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao executar a contagem: %w", err)
	}

	return total, nil
}
