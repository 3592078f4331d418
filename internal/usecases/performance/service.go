// Package performance monta a visão geral do painel a partir da série diária de
// snapshots e gera o snapshot de cada dia.
package performance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
	"github.com/vfg2006/delivery-dashboard-api/internal/reporting"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
)

const operationOverview = "dashboard_overview"

type EventSource interface {
	ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.RawEvent, error)
}

type Overviewer interface {
	// GetOverview retorna os últimos days snapshots e a variação de cada campo
	GetOverview(ctx context.Context, days int) (*domain.DashboardOverview, error)

	// BuildDailySnapshot consolida o dia informado e grava o snapshot
	BuildDailySnapshot(ctx context.Context, day time.Time) (*domain.PeriodSnapshot, error)
}

type Options struct {
	DefaultDays int
	MaxDays     int
	Location    *time.Location
}

type Service struct {
	snapshots repository.SnapshotRepository
	events    EventSource
	partners  repository.PartnerRepository
	stores    repository.StoreRepository
	activity  repository.ActivityRepository
	metrics   *metrics.Metrics
	opts      Options
}

var _ Overviewer = (*Service)(nil)

func NewService(
	snapshots repository.SnapshotRepository,
	events EventSource,
	partners repository.PartnerRepository,
	stores repository.StoreRepository,
	activity repository.ActivityRepository,
	m *metrics.Metrics,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	return &Service{
		snapshots: snapshots,
		events:    events,
		partners:  partners,
		stores:    stores,
		activity:  activity,
		metrics:   m,
		opts:      opts,
	}
}

func (s *Service) GetOverview(ctx context.Context, days int) (*domain.DashboardOverview, error) {
	if days == 0 {
		days = s.opts.DefaultDays
	}

	// Com menos de dois dias não há o que comparar
	if days < 2 || days > s.opts.MaxDays {
		s.metrics.ValidationErrors.WithLabelValues(operationOverview).Inc()
		return nil, domain.NewValidationError("days", -1, fmt.Sprintf("deve estar entre 2 e %d", s.opts.MaxDays))
	}

	snapshots, err := s.snapshots.ListLatest(ctx, days)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar snapshots diários")
		s.metrics.DataUnavailable.WithLabelValues(operationOverview).Inc()
		return nil, domain.NewSourceError(err)
	}

	if len(snapshots) == 0 {
		s.metrics.DataUnavailable.WithLabelValues(operationOverview).Inc()
		return nil, domain.ErrNoData
	}

	deltas, err := reporting.CompareAll(snapshots, domain.SnapshotFields)
	if err != nil {
		s.metrics.ValidationErrors.WithLabelValues(operationOverview).Inc()
		return nil, errors.Wrap(err, "erro ao comparar períodos")
	}

	overview := &domain.DashboardOverview{
		Days:      days,
		Snapshots: snapshots,
		Deltas:    make([]domain.SnapshotDelta, 0, len(deltas)),
	}

	for _, delta := range deltas {
		overview.Deltas = append(overview.Deltas, delta.ToDomain())
	}

	return overview, nil
}

func (s *Service) BuildDailySnapshot(ctx context.Context, day time.Time) (*domain.PeriodSnapshot, error) {
	local := day.In(s.opts.Location)
	start := utils.StartOfDay(local)
	end := utils.NextDay(local)

	logger := log.ForContext(ctx).WithField("date", start.Format(time.DateOnly))

	snapshot := &domain.PeriodSnapshot{
		Date: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
	}

	var (
		wg                                             sync.WaitGroup
		ordersErr, partnersErr, storesErr, activityErr error
		activity                                       *repository.DayActivity
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		ordersErr = s.fillOrders(ctx, snapshot, start, end)
	}()

	go func() {
		defer wg.Done()
		snapshot.ActivePartners, partnersErr = s.partners.CountActive(ctx)
	}()

	go func() {
		defer wg.Done()
		snapshot.StoresOnboarded, storesErr = s.stores.CountCreatedBetween(ctx, start, end)
	}()

	go func() {
		defer wg.Done()
		activity, activityErr = s.activity.GetDayActivity(ctx, start, end)
	}()

	wg.Wait()

	for _, err := range []error{ordersErr, partnersErr, storesErr, activityErr} {
		if err != nil {
			logger.WithError(err).Error("Erro ao consolidar snapshot diário")
			return nil, errors.Wrap(err, "erro ao consolidar snapshot diário")
		}
	}

	if activity != nil {
		snapshot.NewCustomers = activity.NewCustomers
		snapshot.DeliveriesCompleted = activity.DeliveriesCompleted
		snapshot.Commission = utils.RoundWithTwoDecimalPlace(activity.Commission)
	}

	if err := s.snapshots.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "erro ao salvar snapshot diário")
	}

	logger.WithFields(log.Fields{
		"orders":  snapshot.Orders,
		"revenue": snapshot.Revenue,
	}).Info("Snapshot diário salvo")

	return snapshot, nil
}

// fillOrders agrega os pedidos do dia no snapshot
func (s *Service) fillOrders(ctx context.Context, snapshot *domain.PeriodSnapshot, start, end time.Time) error {
	events, err := s.events.ListEvents(ctx, domain.EventQuery{
		Kinds:     []domain.EventKind{domain.EventKindOrder},
		StartDate: start,
		EndBefore: end,
	})
	if err != nil {
		return errors.Wrap(err, "erro ao buscar pedidos do dia")
	}

	buckets, err := reporting.Aggregate(events, reporting.DayKeyIn(s.opts.Location))
	if err != nil {
		return err
	}
	s.metrics.AggregatedEvents.WithLabelValues("daily_snapshot").Add(float64(buckets.Events()))

	bucket, _ := buckets.Get(start.Format(time.DateOnly))
	orders := bucket.Kind(domain.EventKindOrder)

	snapshot.Orders = orders.Count
	snapshot.Revenue = utils.RoundWithTwoDecimalPlace(orders.Sum)

	return nil
}
