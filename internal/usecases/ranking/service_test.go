package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func TestGetTopCampaigns(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		expectedIDs []string
	}{
		{name: "Limite explícito", n: 2, expectedIDs: []string{"free", "a"}},
		{name: "Limite zero usa o padrão", n: 0, expectedIDs: []string{"free", "a", "c"}},
	}

	campaigns := []domain.Campaign{
		{ID: "a", Conversions: 6, Spend: 3},
		{ID: "b", Conversions: 1, Spend: 10},
		{ID: "free", Conversions: 5},
		{ID: "c", Conversions: 2, Spend: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockCampaignRepository(ctrl)
			repo.EXPECT().ListByStatus(gomock.Any(), domain.CampaignStatusActive).Return(campaigns, nil)

			service := NewService(repo, nil, 3)

			top, err := service.GetTopCampaigns(context.Background(), tt.n)
			require.NoError(t, err)

			ids := make([]string, 0, len(top))
			for _, ranked := range top {
				ids = append(ids, ranked.Entity.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, 500.0, top[0].Metric)
		})
	}
}

func TestGetTopCampaigns_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().ListByStatus(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := NewService(repo, nil, 5).GetTopCampaigns(context.Background(), 5)

	assert.True(t, domain.IsSourceError(err))
}

func TestGetTopCampaigns_NoActiveCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCampaignRepository(ctrl)
	repo.EXPECT().ListByStatus(gomock.Any(), domain.CampaignStatusActive).Return([]domain.Campaign{}, nil)

	top, err := NewService(repo, nil, 5).GetTopCampaigns(context.Background(), 5)

	assert.Nil(t, top)
	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.False(t, domain.IsSourceError(err))
}

func TestGetStoreRanking(t *testing.T) {
	older := time.Date(2024, 1, 5, 6, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 1, 6, 6, 0, 0, 0, time.UTC)

	t.Run("Mês informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStoreRankingRepository(ctrl)
		repo.EXPECT().GetByMonth(gomock.Any(), "01-2024").Return([]domain.StoreRankingItem{
			{StoreID: "st_1", Position: 1, UpdatedAt: older},
			{StoreID: "st_2", Position: 2, UpdatedAt: newer},
		}, nil)

		response, err := NewService(nil, repo, 5).GetStoreRanking(context.Background(), "01-2024")

		require.NoError(t, err)
		assert.Equal(t, "01-2024", response.Month)
		assert.Len(t, response.Ranking, 2)
		assert.Equal(t, newer, response.LastUpdate)
	})

	t.Run("Mês atual por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStoreRankingRepository(ctrl)
		repo.EXPECT().GetByMonth(gomock.Any(), time.Now().Format(utils.MonthLayout)).Return(nil, nil)

		_, err := NewService(nil, repo, 5).GetStoreRanking(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		_, err := NewService(nil, nil, 5).GetStoreRanking(context.Background(), "2024-01")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Falha no banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStoreRankingRepository(ctrl)
		repo.EXPECT().GetByMonth(gomock.Any(), "02-2024").Return(nil, errors.New("timeout"))

		_, err := NewService(nil, repo, 5).GetStoreRanking(context.Background(), "02-2024")

		assert.True(t, domain.IsSourceError(err))
	})
}

func TestGetStorePosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStoreRankingRepository(ctrl)
	service := NewService(nil, repo, 5)

	repo.EXPECT().GetByStoreID(gomock.Any(), "st_1", "03-2024").Return(&domain.StoreRankingItem{StoreID: "st_1", Position: 4}, nil)
	repo.EXPECT().GetByStoreID(gomock.Any(), "st_2", "03-2024").Return(nil, nil)

	item, err := service.GetStorePosition(context.Background(), "st_1", "03-2024")
	require.NoError(t, err)
	assert.Equal(t, 4, item.Position)

	_, err = service.GetStorePosition(context.Background(), "st_2", "03-2024")
	assert.ErrorIs(t, err, domain.ErrNoData)

	_, err = service.GetStorePosition(context.Background(), "", "03-2024")
	assert.True(t, domain.IsValidationError(err))
}
