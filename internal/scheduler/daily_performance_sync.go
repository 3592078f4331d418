package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-dashboard-api/internal/config"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
)

const JobDailyPerformance = "daily-performance"

type SnapshotBuilder interface {
	BuildDailySnapshot(ctx context.Context, day time.Time) (*domain.PeriodSnapshot, error)
}

// DailyPerformanceSyncService grava o snapshot do dia anterior
type DailyPerformanceSyncService struct {
	*job
	builder  SnapshotBuilder
	location *time.Location
	now      func() time.Time
}

func NewDailyPerformanceSyncService(builder SnapshotBuilder, m *metrics.Metrics, cfg *config.Config) *DailyPerformanceSyncService {
	s := &DailyPerformanceSyncService{
		builder:  builder,
		location: cfg.Reporting.Location(),
		now:      time.Now,
	}

	s.job = newJob(JobDailyPerformance, SyncConfig{
		CronSchedule: cfg.DailyPerformanceSync.CronSchedule, // Default: 2h da manhã todos os dias
		SyncEnabled:  cfg.DailyPerformanceSync.Enabled,
	}, m, s.location, s.SyncYesterday)

	return s
}

func (s *DailyPerformanceSyncService) Start(ctx context.Context) error {
	return s.start(ctx)
}

// SyncYesterday consolida o dia anterior no fuso do relatório
func (s *DailyPerformanceSyncService) SyncYesterday(ctx context.Context) error {
	yesterday := s.now().In(s.location).AddDate(0, 0, -1)

	logrus.WithField("date", yesterday.Format(time.DateOnly)).Info("Iniciando snapshot diário de desempenho")

	snapshot, err := s.builder.BuildDailySnapshot(ctx, yesterday)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"date":    snapshot.Date.Format(time.DateOnly),
		"orders":  snapshot.Orders,
		"revenue": snapshot.Revenue,
	}).Info("Snapshot diário de desempenho concluído")

	return nil
}

// TriggerManualSync inicia manualmente o snapshot do dia anterior
func (s *DailyPerformanceSyncService) TriggerManualSync() {
	s.triggerManualSync()
}

// GetStatus retorna o status atual do agendador
func (s *DailyPerformanceSyncService) GetStatus() map[string]any {
	return s.status()
}
