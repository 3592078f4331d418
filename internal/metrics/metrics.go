// Package metrics registra os coletores Prometheus do painel
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "delivery_dashboard"

// Sync job status labels
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	AggregatedEvents *prometheus.CounterVec
	ValidationErrors *prometheus.CounterVec
	DataUnavailable  *prometheus.CounterVec
	CacheLookups     *prometheus.CounterVec

	SyncRuns     *prometheus.CounterVec
	SyncDuration *prometheus.HistogramVec
	LastSync     *prometheus.GaugeVec

	RateLimitHits prometheus.Counter

	gatherer prometheus.Gatherer
}

// New cria os coletores no registro informado. Com reg nil usa um registro próprio
// com os coletores de processo e runtime.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total de requisições HTTP por rota",
			},
			[]string{"route", "method", "code"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latência das requisições HTTP por rota",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"route", "method"},
		),
		AggregatedEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "aggregated_events_total",
				Help:      "Eventos brutos agregados em buckets",
			},
			[]string{"operation"},
		),
		ValidationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "validation_errors_total",
				Help:      "Passadas abortadas por registro malformado",
			},
			[]string{"operation"},
		),
		DataUnavailable: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "data_unavailable_total",
				Help:      "Consultas respondidas como dados indisponíveis",
			},
			[]string{"operation"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "cache_lookups_total",
				Help:      "Consultas ao cache de relatórios",
			},
			[]string{"result"},
		),
		SyncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "sync_runs_total",
				Help:      "Execuções dos jobs agendados",
			},
			[]string{"job", "status"},
		),
		SyncDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "sync_duration_seconds",
				Help:      "Duração dos jobs agendados",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
			},
			[]string{"job"},
		),
		LastSync: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "sync_last_success_timestamp_seconds",
				Help:      "Horário da última execução bem-sucedida de cada job",
			},
			[]string{"job"},
		),
		RateLimitHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "rate_limit_hits_total",
				Help:      "Requisições recusadas pelo limitador",
			},
		),
		gatherer: reg,
	}
}

// Handler expõe o registro no formato de exposição do Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// InstrumentRoute mede contagem e latência de uma rota. route é o padrão registrado
// (ex: /v1/campaigns/:id/insights/daily), nunca o caminho concreto.
func (m *Metrics) InstrumentRoute(route string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}

	return promhttp.InstrumentHandlerDuration(
		m.HTTPDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.HTTPRequests.MustCurryWith(labels), next),
	)
}

// ObserveSync registra o resultado de uma execução de job
func (m *Metrics) ObserveSync(job string, started time.Time, err error) {
	m.SyncDuration.WithLabelValues(job).Observe(time.Since(started).Seconds())

	if err != nil {
		m.SyncRuns.WithLabelValues(job, StatusError).Inc()
		return
	}

	m.SyncRuns.WithLabelValues(job, StatusSuccess).Inc()
	m.LastSync.WithLabelValues(job).SetToCurrentTime()
}
