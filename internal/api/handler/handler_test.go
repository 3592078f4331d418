package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/delivery-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	directorymocks "github.com/vfg2006/delivery-dashboard-api/internal/usecases/directory/mocks"
	insightmocks "github.com/vfg2006/delivery-dashboard-api/internal/usecases/insighting/mocks"
	performancemocks "github.com/vfg2006/delivery-dashboard-api/internal/usecases/performance/mocks"
	rankingmocks "github.com/vfg2006/delivery-dashboard-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/delivery-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
	"github.com/vfg2006/delivery-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var roles = middleware.NewRoles([]string{"admin"})

func serve(t *testing.T, routes []router.Route, method, target, role string) *httptest.ResponseRecorder {
	t.Helper()
	log.SetupTestLogger()

	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, nil)
	if role != "" {
		claims := &domain.Claims{Role: role}
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetCampaignDailyPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := insightmocks.NewMockInsighter(ctrl)

	service.EXPECT().
		GetCampaignDailyPerformance(gomock.Any(), "camp_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filters *domain.InsightFilters) (*domain.CampaignPerformanceResponse, error) {
			require.NotNil(t, filters.StartDate)
			require.NotNil(t, filters.EndDate)
			assert.Equal(t, "2024-01-01", filters.StartDate.Format(time.DateOnly))
			return &domain.CampaignPerformanceResponse{
				CampaignID: "camp_1",
				Days:       []domain.DailyPerformance{{Date: "2024-01-01", Totals: domain.Counters{Clicks: 3}}},
			}, nil
		})

	rec := serve(t, Insights(service, roles), http.MethodGet, "/v1/campaigns/camp_1/insights/daily?start_date=2024-01-01&end_date=2024-01-07", "viewer")

	require.Equal(t, http.StatusOK, rec.Code)
	var body domain.CampaignPerformanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "camp_1", body.CampaignID)
	assert.Equal(t, int64(3), body.Days[0].Totals.Clicks)
}

func TestGetCampaignSummary_Errors(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Data malformada",
			target:         "/v1/campaigns/camp_1/insights/summary?start_date=01/02/2024",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "Erro de validação do serviço",
			target:         "/v1/campaigns/camp_1/insights/summary",
			serviceErr:     domain.NewValidationError("period", -1, "é necessário informar as datas de início e fim"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "Sem dados",
			target:         "/v1/campaigns/camp_1/insights/summary?start_date=2024-01-01&end_date=2024-01-02",
			serviceErr:     domain.ErrNoData,
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrDataUnavailable,
		},
		{
			name:           "Fonte fora do ar",
			target:         "/v1/campaigns/camp_1/insights/summary?start_date=2024-01-01&end_date=2024-01-02",
			serviceErr:     domain.NewSourceError(errors.New("connection refused")),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   apiErrors.ErrDataSourceFailure,
		},
		{
			name:           "Erro inesperado",
			target:         "/v1/campaigns/camp_1/insights/summary?start_date=2024-01-01&end_date=2024-01-02",
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := insightmocks.NewMockInsighter(ctrl)

			if tt.serviceErr != nil {
				service.EXPECT().GetCampaignSummary(gomock.Any(), "camp_1", gomock.Any()).Return(nil, tt.serviceErr)
			}

			rec := serve(t, Insights(service, roles), http.MethodGet, tt.target, "viewer")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
		})
	}
}

func TestGetDashboardOverview(t *testing.T) {
	t.Run("Somente administradores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := performancemocks.NewMockOverviewer(ctrl)

		rec := serve(t, Dashboard(service, roles), http.MethodGet, "/v1/dashboard/overview", "viewer")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Dias informados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := performancemocks.NewMockOverviewer(ctrl)
		service.EXPECT().GetOverview(gomock.Any(), 14).Return(&domain.DashboardOverview{
			Days:   14,
			Deltas: []domain.SnapshotDelta{{Field: domain.SnapshotRevenue, Percent: 12.5, Comparable: true}},
		}, nil)

		rec := serve(t, Dashboard(service, roles), http.MethodGet, "/v1/dashboard/overview?days=14", "admin")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"percent":12.5`)
	})

	t.Run("Dias inválidos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := performancemocks.NewMockOverviewer(ctrl)

		rec := serve(t, Dashboard(service, roles), http.MethodGet, "/v1/dashboard/overview?days=abc", "admin")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRankings(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := rankingmocks.NewMockRankingService(ctrl)

	service.EXPECT().GetTopCampaigns(gomock.Any(), 3).Return([]domain.RankedEntity[domain.Campaign]{
		{Entity: domain.Campaign{ID: "c1"}, Metric: 250, Position: 1},
	}, nil)
	service.EXPECT().GetStoreRanking(gomock.Any(), "02-2024").Return(&domain.StoreRankingResponse{Month: "02-2024"}, nil)
	service.EXPECT().GetStorePosition(gomock.Any(), "st_9", "").Return(nil, domain.ErrNoData)

	rec := serve(t, Rankings(service, roles), http.MethodGet, "/v1/rankings/campaigns?limit=3", "viewer")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"position":1`)

	rec = serve(t, Rankings(service, roles), http.MethodGet, "/v1/rankings/stores?month=02-2024", "admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"month":"02-2024"`)

	rec = serve(t, Rankings(service, roles), http.MethodGet, "/v1/rankings/stores/st_9", "viewer")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := directorymocks.NewMockSearcher(ctrl)

	name := "Pizza Hub"
	service.EXPECT().SearchStores(gomock.Any(), "pizza").Return([]domain.Store{{ID: "st_1", Name: &name}}, nil)

	rec := serve(t, Directory(service, roles), http.MethodGet, "/v1/stores?q=pizza", "admin")

	require.Equal(t, http.StatusOK, rec.Code)
	var body listResponse[domain.Store]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pizza", body.Query)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "st_1", body.Items[0].ID)
}

type fakeSyncer struct {
	triggered int
}

func (f *fakeSyncer) TriggerManualSync() {
	f.triggered++
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	daily := &fakeSyncer{}
	ranking := &fakeSyncer{}
	services := CronJobServices{DailyPerformanceSyncService: daily, StoreRankingSyncService: ranking}

	rec := serve(t, CronJobs(services, roles), http.MethodPost, "/v1/cron/store-ranking/run", "admin")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, ranking.triggered)
	assert.Equal(t, 0, daily.triggered)

	rec = serve(t, CronJobs(services, roles), http.MethodPost, "/v1/cron/all/run", "admin")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, ranking.triggered)
	assert.Equal(t, 1, daily.triggered)

	rec = serve(t, CronJobs(services, roles), http.MethodPost, "/v1/cron/meta/run", "admin")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, CronJobs(services, roles), http.MethodPost, "/v1/cron/all/run", "viewer")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(t, CronJobs(services, roles), http.MethodGet, "/v1/cron/status", "admin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"daily-performance"`)
	assert.Contains(t, rec.Body.String(), `"store-ranking"`)
}

func TestHealthcheck(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	healthy := map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
	}
	rec := serve(t, Healthcheck(healthy, metrics), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)

	unhealthy := map[string]HealthCheck{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("dial tcp: connection refused") },
	}
	rec = serve(t, Healthcheck(unhealthy, metrics), http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
