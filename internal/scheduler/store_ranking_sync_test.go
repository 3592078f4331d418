package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func order(storeID string, day int, value float64) domain.RawEvent {
	return domain.RawEvent{
		ID:         storeID + "-" + time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly),
		Kind:       domain.EventKindOrder,
		EntityID:   storeID,
		OccurredAt: time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC),
		Value:      &value,
	}
}

type rankingFixture struct {
	service     *StoreRankingSyncService
	events      *mocks.MockEventRepository
	storeRepo   *mocks.MockStoreRepository
	rankingRepo *mocks.MockStoreRankingRepository
}

func newRankingFixture(t *testing.T) *rankingFixture {
	ctrl := gomock.NewController(t)

	f := &rankingFixture{
		events:      mocks.NewMockEventRepository(ctrl),
		storeRepo:   mocks.NewMockStoreRepository(ctrl),
		rankingRepo: mocks.NewMockStoreRankingRepository(ctrl),
	}
	f.service = NewStoreRankingSyncService(f.events, f.storeRepo, f.rankingRepo, metrics.New(prometheus.NewRegistry()), testConfig())

	return f
}

func TestStoreRankingSyncService_UpdateStoreRanking(t *testing.T) {
	f := newRankingFixture(t)
	processingDate := time.Date(2024, 1, 16, 6, 0, 0, 0, time.UTC)

	f.events.EXPECT().
		ListEvents(gomock.Any(), domain.EventQuery{
			Kinds:     []domain.EventKind{domain.EventKindOrder},
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndBefore: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		}).
		Return([]domain.RawEvent{
			order("st_b", 2, 100),
			order("st_c", 3, 150),
			order("st_a", 4, 300),
			order("st_b", 5, 50),
		}, nil)

	f.storeRepo.EXPECT().
		ListByIDs(gomock.Any(), []string{"st_a", "st_b", "st_c"}).
		Return([]domain.Store{
			{ID: "st_a", Name: stringPtr("Loja A")},
			{ID: "st_b", Name: stringPtr("Loja B")},
			{ID: "st_c"},
		}, nil)

	f.rankingRepo.EXPECT().
		GetByMonth(gomock.Any(), "01-2024").
		Return([]domain.StoreRankingItem{
			{StoreID: "st_b", Month: "01-2024", Position: 1},
			{StoreID: "st_a", Month: "01-2024", Position: 2},
		}, nil)

	var saved []*domain.StoreRankingItem
	f.rankingRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items []*domain.StoreRankingItem) error {
			saved = items
			return nil
		})

	result, err := f.service.updateStoreRankingWithDate(context.Background(), processingDate)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, saved, result)

	// Loja A subiu para o primeiro lugar
	assert.Equal(t, "st_a", result[0].StoreID)
	assert.Equal(t, "Loja A", result[0].StoreName)
	assert.Equal(t, 300.0, result[0].Revenue)
	assert.Equal(t, 1, result[0].Position)
	assert.Equal(t, 2, result[0].PreviousPosition)
	assert.Equal(t, 1, result[0].PositionChange)

	// Loja B caiu uma posição; empata com C mas vem antes pelo id
	assert.Equal(t, "st_b", result[1].StoreID)
	assert.Equal(t, int64(2), result[1].Orders)
	assert.Equal(t, 150.0, result[1].Revenue)
	assert.Equal(t, 2, result[1].Position)
	assert.Equal(t, -1, result[1].PositionChange)

	// Loja C é nova no ranking
	assert.Equal(t, "st_c", result[2].StoreID)
	assert.Equal(t, "", result[2].StoreName)
	assert.Equal(t, 3, result[2].Position)
	assert.Equal(t, 0, result[2].PreviousPosition)
	assert.Equal(t, 0, result[2].PositionChange)

	for _, item := range result {
		assert.Equal(t, "01-2024", item.Month)
		assert.Equal(t, result[0].BatchID, item.BatchID)
	}
	assert.Regexp(t, `^rk_[A-Za-z0-9]{10}$`, result[0].BatchID)
}

func TestStoreRankingSyncService_FirstDayOfMonth(t *testing.T) {
	f := newRankingFixture(t)

	// No dia 1º o job fecha o mês anterior
	f.events.EXPECT().
		ListEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.EventQuery) ([]domain.RawEvent, error) {
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), query.StartDate)
			assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), query.EndBefore)
			return []domain.RawEvent{order("st_a", 31, 10)}, nil
		})
	f.storeRepo.EXPECT().ListByIDs(gomock.Any(), []string{"st_a"}).Return(nil, nil)
	f.rankingRepo.EXPECT().GetByMonth(gomock.Any(), "01-2024").Return(nil, nil)
	f.rankingRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

	result, err := f.service.updateStoreRankingWithDate(context.Background(), time.Date(2024, 2, 1, 6, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "01-2024", result[0].Month)
}

func TestStoreRankingSyncService_NoOrders(t *testing.T) {
	f := newRankingFixture(t)
	f.events.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]domain.RawEvent{}, nil)

	result, err := f.service.updateStoreRankingWithDate(context.Background(), time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestStoreRankingSyncService_Errors(t *testing.T) {
	processingDate := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	t.Run("Falha ao buscar pedidos", func(t *testing.T) {
		f := newRankingFixture(t)
		f.events.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := f.service.updateStoreRankingWithDate(context.Background(), processingDate)
		assert.ErrorContains(t, err, "timeout")
	})

	t.Run("Pedido malformado", func(t *testing.T) {
		f := newRankingFixture(t)
		f.events.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]domain.RawEvent{
			{ID: "x", Kind: domain.EventKindOrder, OccurredAt: processingDate},
		}, nil)

		_, err := f.service.updateStoreRankingWithDate(context.Background(), processingDate)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Falha ao salvar", func(t *testing.T) {
		f := newRankingFixture(t)
		f.events.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]domain.RawEvent{order("st_a", 2, 10)}, nil)
		f.storeRepo.EXPECT().ListByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.rankingRepo.EXPECT().GetByMonth(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.rankingRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("deadlock"))

		_, err := f.service.updateStoreRankingWithDate(context.Background(), processingDate)
		assert.ErrorContains(t, err, "deadlock")
	})
}
