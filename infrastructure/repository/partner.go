package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
)

const (
	partnersTable = "partners p"
)

type PartnerRepository interface {
	List(ctx context.Context) ([]domain.Partner, error)
	CountActive(ctx context.Context) (int64, error)
}

type partnerRepository struct {
	conn *postgres.Connection
}

func NewPartnerRepository(conn *postgres.Connection) PartnerRepository {
	return &partnerRepository{
		conn: conn,
	}
}

func (r *partnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	sqlQuery, args, err := squirrel.
		Select("p.id", "p.type", "p.name", "p.email", "p.phone", "p.vehicle", "p.active", "p.created_at").
		From(partnersTable).
		OrderBy("p.created_at DESC", "p.id ASC").
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

	partners := make([]domain.Partner, 0)
	for rows.Next() {
		var (
			partner     domain.Partner
			partnerType string
		)
		err := rows.Scan(
			&partner.ID,
			&partnerType,
			&partner.Name,
			&partner.Email,
			&partner.Phone,
			&partner.Vehicle,
			&partner.Active,
			&partner.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear parceiro: %w", err)
		}
		partner.Type = domain.PartnerType(partnerType)
		partners = append(partners, partner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return partners, nil
}

// CountActive conta os entregadores ativos
func (r *partnerRepository) CountActive(ctx context.Context) (int64, error) {
	return count(ctx, r.conn, partnersTable, squirrel.Eq{
		"p.active": true,
		"p.type":   string(domain.PartnerTypeDelivery),
	})
}
