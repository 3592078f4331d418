package insighting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/redis"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
	"github.com/vfg2006/delivery-dashboard-api/internal/reporting"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
)

const (
	operationDaily   = "campaign_daily"
	operationSummary = "campaign_summary"

	// MaxRangeDays limita o período de uma consulta de insights
	MaxRangeDays = 366
)

// campaignKinds são os eventos atribuídos a campanhas; pedidos pertencem às lojas
var campaignKinds = []domain.EventKind{
	domain.EventKindImpression,
	domain.EventKindClick,
	domain.EventKindConversion,
}

var _ Insighter = (*Service)(nil)

type Service struct {
	source   EventSource
	metrics  *metrics.Metrics
	location *time.Location
	cache    redis.Cache
	cacheTTL time.Duration
}

// NewService cria o serviço de insights. loc define o fuso dos buckets diários.
func NewService(source EventSource, m *metrics.Metrics, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		source:   source,
		metrics:  m,
		location: loc,
	}
}

// WithCache habilita o cache dos relatórios
func (s *Service) WithCache(cache redis.Cache, ttl time.Duration) *Service {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

func (s *Service) GetCampaignDailyPerformance(ctx context.Context, campaignID string, filters *domain.InsightFilters) (*domain.CampaignPerformanceResponse, error) {
	start, end, err := s.validate(campaignID, filters)
	if err != nil {
		s.metrics.ValidationErrors.WithLabelValues(operationDaily).Inc()
		return nil, err
	}

	cacheKey := fmt.Sprintf("insights:daily:%s:%s:%s", campaignID, start.Format(time.DateOnly), end.Format(time.DateOnly))

	response := &domain.CampaignPerformanceResponse{}
	if s.fromCache(ctx, cacheKey, response) {
		return response, nil
	}

	events, err := s.loadEvents(ctx, operationDaily, campaignID, start, end)
	if err != nil {
		return nil, err
	}

	buckets, err := reporting.Aggregate(events, reporting.DayKeyIn(s.location))
	if err != nil {
		s.metrics.ValidationErrors.WithLabelValues(operationDaily).Inc()
		return nil, errors.Wrap(err, "erro ao agregar eventos por dia")
	}
	s.metrics.AggregatedEvents.WithLabelValues(operationDaily).Add(float64(buckets.Events()))

	response = &domain.CampaignPerformanceResponse{
		CampaignID: campaignID,
		StartDate:  start.Format(time.DateOnly),
		EndDate:    end.Format(time.DateOnly),
		Days:       make([]domain.DailyPerformance, 0),
	}

	// Dias sem eventos entram zerados para o gráfico não pular datas
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)

		var totals domain.Counters
		if bucket, exists := buckets.Get(key); exists {
			totals = domain.CountersFromBucket(bucket)
		}

		response.Days = append(response.Days, domain.DailyPerformance{
			Date:    key,
			Totals:  totals,
			Metrics: reporting.Derive(totals),
		})
	}

	s.toCache(ctx, cacheKey, response)

	return response, nil
}

func (s *Service) GetCampaignSummary(ctx context.Context, campaignID string, filters *domain.InsightFilters) (*domain.CampaignSummary, error) {
	start, end, err := s.validate(campaignID, filters)
	if err != nil {
		s.metrics.ValidationErrors.WithLabelValues(operationSummary).Inc()
		return nil, err
	}

	cacheKey := fmt.Sprintf("insights:summary:%s:%s:%s", campaignID, start.Format(time.DateOnly), end.Format(time.DateOnly))

	summary := &domain.CampaignSummary{}
	if s.fromCache(ctx, cacheKey, summary) {
		return summary, nil
	}

	events, err := s.loadEvents(ctx, operationSummary, campaignID, start, end)
	if err != nil {
		return nil, err
	}

	buckets, err := reporting.Aggregate(events, reporting.EntityKey)
	if err != nil {
		s.metrics.ValidationErrors.WithLabelValues(operationSummary).Inc()
		return nil, errors.Wrap(err, "erro ao agregar eventos da campanha")
	}
	s.metrics.AggregatedEvents.WithLabelValues(operationSummary).Add(float64(buckets.Events()))

	var totals domain.Counters
	for _, bucket := range buckets.Buckets() {
		totals.Add(domain.CountersFromBucket(bucket))
	}

	summary = &domain.CampaignSummary{
		CampaignID: campaignID,
		StartDate:  start.Format(time.DateOnly),
		EndDate:    end.Format(time.DateOnly),
		Events:     buckets.Events(),
		Totals:     totals,
		Metrics:    reporting.Derive(totals),
	}

	s.toCache(ctx, cacheKey, summary)

	return summary, nil
}

// validate confere os filtros e devolve o período como datas no fuso do serviço
func (s *Service) validate(campaignID string, filters *domain.InsightFilters) (time.Time, time.Time, error) {
	if campaignID == "" {
		return time.Time{}, time.Time{}, domain.NewValidationError("campaign_id", -1, "é necessário informar a campanha")
	}

	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("period", -1, "é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return time.Time{}, time.Time{}, domain.NewValidationError("period", -1, "a data de início não pode ser posterior à data de fim")
	}

	start := s.date(*filters.StartDate)
	end := s.date(*filters.EndDate)

	if end.Sub(start) >= MaxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, domain.NewValidationError("period", -1, fmt.Sprintf("o período não pode passar de %d dias", MaxRangeDays))
	}

	return start, end, nil
}

func (s *Service) date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.location)
}

// loadEvents busca os eventos da campanha. Falha ou ausência de eventos viram ErrNoData.
func (s *Service) loadEvents(ctx context.Context, operation, campaignID string, start, end time.Time) ([]domain.RawEvent, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id": campaignID,
		"start_date":  start.Format(time.DateOnly),
		"end_date":    end.Format(time.DateOnly),
	})

	events, err := s.source.ListEvents(ctx, domain.EventQuery{
		EntityID:  campaignID,
		Kinds:     campaignKinds,
		StartDate: start,
		EndBefore: end.AddDate(0, 0, 1),
	})
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar eventos da campanha")
		s.metrics.DataUnavailable.WithLabelValues(operation).Inc()
		return nil, domain.NewSourceError(err)
	}

	if len(events) == 0 {
		logger.Warn("Nenhum evento encontrado para a campanha no período")
		s.metrics.DataUnavailable.WithLabelValues(operation).Inc()
		return nil, domain.ErrNoData
	}

	return events, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao ler relatório do cache")
		s.metrics.CacheLookups.WithLabelValues("error").Inc()
		return false
	}

	if !found {
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		return false
	}

	s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	return true
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar relatório no cache")
	}
}
