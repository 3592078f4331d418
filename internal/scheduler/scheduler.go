// Package scheduler contém os serviços de agendamento que consolidam os dados do painel
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
)

// ManualSyncer é o que a rota de cron precisa de cada job
type ManualSyncer interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

type SyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// job guarda o agendamento e o estado de execução de uma sincronização.
// Só uma execução por vez: chamadas concorrentes são ignoradas.
type job struct {
	name      string
	config    SyncConfig
	scheduler *gocron.Scheduler
	metrics   *metrics.Metrics
	run       func(ctx context.Context) error

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func newJob(name string, cfg SyncConfig, m *metrics.Metrics, loc *time.Location, run func(ctx context.Context) error) *job {
	logrus.WithFields(logrus.Fields{
		"job":           name,
		"cron_schedule": cfg.CronSchedule,
	}).Info("Configuração do agendador carregada")

	return &job{
		name:      name,
		config:    cfg,
		scheduler: gocron.NewScheduler(loc),
		metrics:   m,
		run:       run,
	}
}

func (j *job) start(ctx context.Context) error {
	if !j.config.SyncEnabled {
		logrus.WithField("job", j.name).Info("Cron desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  j.name,
		"cron": j.config.CronSchedule,
	}).Info("Iniciando cron")

	_, err := j.scheduler.Cron(j.config.CronSchedule).Do(func() {
		if err := j.sync(ctx); err != nil {
			logrus.WithError(err).WithField("job", j.name).Error("Erro na execução agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", j.name, err)
	}

	j.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", j.name).Info("Parando cron")
		j.scheduler.Stop()
	}()

	return nil
}

// sync executa o job se não houver outra execução em andamento
func (j *job) sync(ctx context.Context) error {
	j.syncMutex.Lock()
	if j.syncRunning {
		j.syncMutex.Unlock()
		logrus.WithField("job", j.name).Warn("Sincronização já está em execução")
		j.metrics.SyncRuns.WithLabelValues(j.name, metrics.StatusSkipped).Inc()
		return nil
	}
	j.syncRunning = true
	j.lastSyncStartedAt = time.Now()
	j.syncMutex.Unlock()

	started := time.Now()
	err := j.run(ctx)
	j.metrics.ObserveSync(j.name, started, err)

	j.syncMutex.Lock()
	j.syncRunning = false
	j.lastSyncCompletedAt = time.Now()
	j.lastSyncError = ""
	if err != nil {
		j.lastSyncError = err.Error()
	}
	j.syncMutex.Unlock()

	return err
}

func (j *job) triggerManualSync() {
	j.syncMutex.Lock()
	running := j.syncRunning
	j.syncMutex.Unlock()

	if running {
		logrus.WithField("job", j.name).Info("Sincronização já em andamento, ignorando solicitação manual")
		return
	}

	logrus.WithField("job", j.name).Info("Iniciando sincronização manual")
	go func() {
		if err := j.sync(context.Background()); err != nil {
			logrus.WithError(err).WithField("job", j.name).Error("Erro na sincronização manual")
		}
	}()
}

func (j *job) status() map[string]any {
	j.syncMutex.Lock()
	defer j.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           j.config.SyncEnabled,
		"sync_cron":              j.config.CronSchedule,
		"sync_running":           j.syncRunning,
		"last_sync_started_at":   j.lastSyncStartedAt,
		"last_sync_completed_at": j.lastSyncCompletedAt,
		"last_sync_error":        j.lastSyncError,
	}
}
