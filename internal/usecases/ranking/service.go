package ranking

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/reporting"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
)

type RankingService interface {
	GetTopCampaigns(ctx context.Context, n int) ([]domain.RankedEntity[domain.Campaign], error)
	GetStoreRanking(ctx context.Context, month string) (*domain.StoreRankingResponse, error)
	GetStorePosition(ctx context.Context, storeID, month string) (*domain.StoreRankingItem, error)
}

type Service struct {
	campaigns    repository.CampaignRepository
	storeRanking repository.StoreRankingRepository
	defaultTopN  int
}

func NewService(
	campaigns repository.CampaignRepository,
	storeRanking repository.StoreRankingRepository,
	defaultTopN int,
) RankingService {
	return &Service{
		campaigns:    campaigns,
		storeRanking: storeRanking,
		defaultTopN:  defaultTopN,
	}
}

// GetTopCampaigns ordena as campanhas ativas por ROI (gasto zero conta como 1)
func (s *Service) GetTopCampaigns(ctx context.Context, n int) ([]domain.RankedEntity[domain.Campaign], error) {
	if n <= 0 {
		n = s.defaultTopN
	}

	campaigns, err := s.campaigns.ListByStatus(ctx, domain.CampaignStatusActive)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar campanhas ativas")
		return nil, domain.NewSourceError(err)
	}

	if len(campaigns) == 0 {
		return nil, domain.ErrNoData
	}

	return reporting.TopCampaignsByROI(campaigns, n), nil
}

// GetStoreRanking lê o ranking de lojas gravado pelo job mensal. Sem mês, usa o atual.
func (s *Service) GetStoreRanking(ctx context.Context, month string) (*domain.StoreRankingResponse, error) {
	if month == "" {
		month = time.Now().Format(utils.MonthLayout)
	}

	if _, err := utils.ParseMonth(month); err != nil {
		return nil, domain.NewValidationError("month", -1, "formato esperado mm-yyyy")
	}

	items, err := s.storeRanking.GetByMonth(ctx, month)
	if err != nil {
		return nil, domain.NewSourceError(errors.Wrap(err, "erro ao buscar ranking de lojas"))
	}

	if len(items) == 0 {
		return nil, domain.ErrNoData
	}

	response := &domain.StoreRankingResponse{
		Month:   month,
		Ranking: items,
	}

	for _, item := range items {
		if item.UpdatedAt.After(response.LastUpdate) {
			response.LastUpdate = item.UpdatedAt
		}
	}

	return response, nil
}

// GetStorePosition retorna a posição de uma loja no ranking do mês
func (s *Service) GetStorePosition(ctx context.Context, storeID, month string) (*domain.StoreRankingItem, error) {
	if storeID == "" {
		return nil, domain.NewValidationError("store_id", -1, "é necessário informar a loja")
	}

	if month == "" {
		month = time.Now().Format(utils.MonthLayout)
	}

	if _, err := utils.ParseMonth(month); err != nil {
		return nil, domain.NewValidationError("month", -1, "formato esperado mm-yyyy")
	}

	item, err := s.storeRanking.GetByStoreID(ctx, storeID, month)
	if err != nil {
		return nil, domain.NewSourceError(errors.Wrap(err, "erro ao buscar posição da loja"))
	}

	if item == nil {
		return nil, domain.ErrNoData
	}

	return item, nil
}
