package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
)

func TestJob_SkipsConcurrentRun(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	release := make(chan struct{})
	started := make(chan struct{})

	j := newJob("test", SyncConfig{CronSchedule: "0 2 * * *"}, m, time.UTC, func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	})

	done := make(chan error)
	go func() { done <- j.sync(context.Background()) }()
	<-started

	assert.Equal(t, true, j.status()["sync_running"])

	// Segunda execução enquanto a primeira roda é ignorada
	require.NoError(t, j.sync(context.Background()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRuns.WithLabelValues("test", metrics.StatusSkipped)))

	close(release)
	require.NoError(t, <-done)

	status := j.status()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "", status["last_sync_error"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRuns.WithLabelValues("test", metrics.StatusSuccess)))
}

func TestJob_RecordsError(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	j := newJob("test", SyncConfig{}, m, time.UTC, func(ctx context.Context) error {
		return errors.New("banco indisponível")
	})

	err := j.sync(context.Background())

	assert.EqualError(t, err, "banco indisponível")
	assert.Equal(t, "banco indisponível", j.status()["last_sync_error"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncRuns.WithLabelValues("test", metrics.StatusError)))
}

func TestJob_StartDisabled(t *testing.T) {
	j := newJob("test", SyncConfig{CronSchedule: "invalid", SyncEnabled: false}, metrics.New(prometheus.NewRegistry()), time.UTC, nil)

	assert.NoError(t, j.start(context.Background()))
}

func TestJob_StartInvalidCron(t *testing.T) {
	j := newJob("test", SyncConfig{CronSchedule: "not a cron", SyncEnabled: true}, metrics.New(prometheus.NewRegistry()), time.UTC, nil)

	assert.Error(t, j.start(context.Background()))
}
