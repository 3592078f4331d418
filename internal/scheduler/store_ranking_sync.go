package scheduler

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/delivery-dashboard-api/internal/config"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
	"github.com/vfg2006/delivery-dashboard-api/internal/reporting"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
)

const JobStoreRanking = "store-ranking"

type EventSource interface {
	ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.RawEvent, error)
}

// StoreRankingSyncService recalcula o ranking de faturamento das lojas no mês corrente
type StoreRankingSyncService struct {
	*job
	events      EventSource
	storeRepo   repository.StoreRepository
	rankingRepo repository.StoreRankingRepository
	location    *time.Location
	now         func() time.Time
}

func NewStoreRankingSyncService(
	events EventSource,
	storeRepo repository.StoreRepository,
	rankingRepo repository.StoreRankingRepository,
	m *metrics.Metrics,
	cfg *config.Config,
) *StoreRankingSyncService {
	s := &StoreRankingSyncService{
		events:      events,
		storeRepo:   storeRepo,
		rankingRepo: rankingRepo,
		location:    cfg.Reporting.Location(),
		now:         time.Now,
	}

	s.job = newJob(JobStoreRanking, SyncConfig{
		CronSchedule: cfg.StoreRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.StoreRankingSync.Enabled,
	}, m, s.location, func(ctx context.Context) error {
		_, err := s.UpdateStoreRanking(ctx)
		return err
	})

	return s
}

func (s *StoreRankingSyncService) Start(ctx context.Context) error {
	return s.start(ctx)
}

// UpdateStoreRanking agrega os pedidos do mês até ontem por loja e grava as posições
func (s *StoreRankingSyncService) UpdateStoreRanking(ctx context.Context) ([]*domain.StoreRankingItem, error) {
	return s.updateStoreRankingWithDate(ctx, s.now().In(s.location))
}

func (s *StoreRankingSyncService) updateStoreRankingWithDate(ctx context.Context, processingDate time.Time) ([]*domain.StoreRankingItem, error) {
	yesterday := processingDate.AddDate(0, 0, -1)
	startDate := utils.FirstDayOfMonth(utils.StartOfDay(yesterday))
	endBefore := utils.NextDay(yesterday)
	month := yesterday.Format(utils.MonthLayout)

	logger := logrus.WithFields(logrus.Fields{
		"month":      month,
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   yesterday.Format(time.DateOnly),
	})
	logger.Info("Iniciando atualização do ranking de lojas")

	orders, err := s.events.ListEvents(ctx, domain.EventQuery{
		Kinds:     []domain.EventKind{domain.EventKindOrder},
		StartDate: startDate,
		EndBefore: endBefore,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar pedidos do mês")
	}

	buckets, err := reporting.Aggregate(orders, reporting.EntityKey)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agregar pedidos por loja")
	}

	if buckets.Len() == 0 {
		logger.Info("Nenhum pedido no mês, ranking não atualizado")
		return []*domain.StoreRankingItem{}, nil
	}

	storeIDs := buckets.Keys()
	sort.Strings(storeIDs)

	stores, err := s.storeRepo.ListByIDs(ctx, storeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar lojas do ranking")
	}

	names := make(map[string]string, len(stores))
	for _, store := range stores {
		if store.Name != nil {
			names[store.ID] = *store.Name
		}
	}

	previous, err := s.rankingRepo.GetByMonth(ctx, month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar ranking anterior")
	}

	rankingsBeforeUpdate := make(map[string]domain.StoreRankingItem, len(previous))
	for _, item := range previous {
		rankingsBeforeUpdate[item.StoreID] = item
	}

	batchID, err := utils.GenerateID("rk")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id do lote")
	}

	items := make([]*domain.StoreRankingItem, 0, len(storeIDs))
	for _, storeID := range storeIDs {
		bucket, _ := buckets.Get(storeID)
		counter := bucket.Kind(domain.EventKindOrder)

		items = append(items, &domain.StoreRankingItem{
			StoreID:   storeID,
			Month:     month,
			StoreName: names[storeID],
			Revenue:   utils.RoundWithTwoDecimalPlace(counter.Sum),
			Orders:    counter.Count,
			BatchID:   batchID,
		})
	}

	updatedRankings := updatePositions(items, rankingsBeforeUpdate)

	if err := s.rankingRepo.SaveOrUpdate(ctx, updatedRankings); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar ranking de lojas")
	}

	logger.WithFields(logrus.Fields{
		"stores":   len(updatedRankings),
		"batch_id": batchID,
	}).Info("Ranking de lojas atualizado")

	return updatedRankings, nil
}

// updatePositions ordena por faturamento e compara com a posição anterior.
// PositionChange positivo significa que a loja subiu.
func updatePositions(items []*domain.StoreRankingItem, rankingsBeforeUpdate map[string]domain.StoreRankingItem) []*domain.StoreRankingItem {
	ranked := reporting.Rank(items, func(item *domain.StoreRankingItem) float64 {
		return item.Revenue
	})

	updated := make([]*domain.StoreRankingItem, 0, len(ranked))
	for _, r := range ranked {
		item := r.Entity
		item.Position = r.Position

		if before, exists := rankingsBeforeUpdate[item.StoreID]; exists && before.Position > 0 {
			item.PreviousPosition = before.Position
			item.PositionChange = before.Position - item.Position
		}

		updated = append(updated, item)
	}

	return updated
}

// TriggerManualSync inicia manualmente a atualização do ranking de lojas
func (s *StoreRankingSyncService) TriggerManualSync() {
	s.triggerManualSync()
}

// GetStatus retorna o status atual do agendador
func (s *StoreRankingSyncService) GetStatus() map[string]any {
	return s.status()
}
