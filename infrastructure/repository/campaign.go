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
	campaignsTable = "campaigns c"
)

var campaignColumns = []string{
	"c.id",
	"c.store_id",
	"c.name",
	"c.description",
	"c.status",
	"c.impressions",
	"c.clicks",
	"c.conversions",
	"c.spend",
	"c.starts_at",
	"c.ends_at",
	"c.created_at",
}

type CampaignRepository interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error)
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, nil)
}

func (r *campaignRepository) ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	return r.list(ctx, squirrel.Eq{"c.status": string(status)})
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	sqlQuery, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Campaign, error) {
	builder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("c.created_at DESC", "c.id ASC").
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

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// scanner é satisfeito por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var (
		campaign domain.Campaign
		status   string
	)

	err := row.Scan(
		&campaign.ID,
		&campaign.StoreID,
		&campaign.Name,
		&campaign.Description,
		&status,
		&campaign.Impressions,
		&campaign.Clicks,
		&campaign.Conversions,
		&campaign.Spend,
		&campaign.StartsAt,
		&campaign.EndsAt,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.Status = domain.CampaignStatus(status)
	return &campaign, nil
}
