package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
)

const (
	storeRankingTable = "store_ranking sr"
)

var storeRankingColumns = []string{
	"sr.id",
	"sr.store_id",
	"sr.month",
	"sr.store_name",
	"sr.revenue",
	"sr.orders",
	"sr.position",
	"sr.position_change",
	"sr.previous_position",
	"sr.batch_id",
	"sr.created_at",
	"sr.updated_at",
}

type StoreRankingRepository interface {
	GetByMonth(ctx context.Context, month string) ([]domain.StoreRankingItem, error)
	GetByStoreID(ctx context.Context, storeID string, month string) (*domain.StoreRankingItem, error)
	// SaveOrUpdate grava o lote de um mês. Todos os itens devem ter o mesmo mês e batch_id.
	SaveOrUpdate(ctx context.Context, rankings []*domain.StoreRankingItem) error
}

type storeRankingRepository struct {
	conn *postgres.Connection
}

func NewStoreRankingRepository(conn *postgres.Connection) StoreRankingRepository {
	return &storeRankingRepository{
		conn: conn,
	}
}

// GetByMonth retorna o ranking do mês (mm-yyyy) ordenado pela posição
func (r *storeRankingRepository) GetByMonth(ctx context.Context, month string) ([]domain.StoreRankingItem, error) {
	sqlQuery, args, err := squirrel.
		Select(storeRankingColumns...).
		From(storeRankingTable).
		Where(squirrel.Eq{"sr.month": month}).
		OrderBy("sr.position ASC").
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

	rankings := make([]domain.StoreRankingItem, 0)
	for rows.Next() {
		item, err := scanStoreRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		rankings = append(rankings, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rankings, nil
}

func (r *storeRankingRepository) GetByStoreID(ctx context.Context, storeID string, month string) (*domain.StoreRankingItem, error) {
	sqlQuery, args, err := squirrel.
		Select(storeRankingColumns...).
		From(storeRankingTable).
		Where(squirrel.Eq{"sr.store_id": storeID, "sr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ranking, err := scanStoreRankingItem(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}

	return ranking, nil
}

func (r *storeRankingRepository) SaveOrUpdate(ctx context.Context, rankings []*domain.StoreRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("store_ranking").
		Columns(
			"store_id",
			"month",
			"store_name",
			"revenue",
			"orders",
			"position",
			"position_change",
			"previous_position",
			"batch_id",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.StoreID,
			ranking.Month,
			ranking.StoreName,
			ranking.Revenue,
			ranking.Orders,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
			ranking.BatchID,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (store_id, month) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			revenue = EXCLUDED.revenue,
			orders = EXCLUDED.orders,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			batch_id = EXCLUDED.batch_id,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	// Lojas que saíram do ranking do mês (sem pedidos no lote atual) são removidas
	stale, staleArgs, err := squirrel.StatementBuilder.
		Delete("store_ranking").
		Where(squirrel.Eq{"month": rankings[0].Month}).
		Where(squirrel.NotEq{"batch_id": rankings[0].BatchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de limpeza: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, stale, staleArgs...); err != nil {
			return fmt.Errorf("erro ao remover ranking antigo: %w", err)
		}

		return nil
	})
}

func scanStoreRankingItem(row scanner) (*domain.StoreRankingItem, error) {
	item := &domain.StoreRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.StoreID,
		&item.Month,
		&item.StoreName,
		&item.Revenue,
		&item.Orders,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.BatchID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
