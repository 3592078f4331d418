package handler

import (
	"net/http"

	"github.com/vfg2006/delivery-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/directory"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/delivery-dashboard-api/pkg/middleware"
)

func Healthcheck(checks map[string]HealthCheck, metrics http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics,
		},
	}
}

func Insights(service insighting.Insighter, roles middleware.Roles) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/:id/insights/daily",
			Method:      http.MethodGet,
			Handler:     GetCampaignDailyPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{roles.Authenticated()},
		},
		{
			Path:        "/v1/campaigns/:id/insights/summary",
			Method:      http.MethodGet,
			Handler:     GetCampaignSummary(service),
			Middlewares: []func(http.Handler) http.Handler{roles.Authenticated()},
		},
	}
}

func Dashboard(service performance.Overviewer, roles middleware.Roles) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/overview",
			Method:      http.MethodGet,
			Handler:     GetDashboardOverview(service),
			Middlewares: []func(http.Handler) http.Handler{roles.AdminOnly()},
		},
	}
}

func Rankings(service ranking.RankingService, roles middleware.Roles) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rankings/campaigns",
			Method:      http.MethodGet,
			Handler:     GetTopCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{roles.Authenticated()},
		},
		{
			Path:        "/v1/rankings/stores",
			Method:      http.MethodGet,
			Handler:     GetStoreRanking(service),
			Middlewares: []func(http.Handler) http.Handler{roles.AdminOnly()},
		},
		{
			Path:        "/v1/rankings/stores/:id",
			Method:      http.MethodGet,
			Handler:     GetStorePosition(service),
			Middlewares: []func(http.Handler) http.Handler{roles.Authenticated()},
		},
	}
}

func Directory(service directory.Searcher, roles middleware.Roles) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores",
			Method:      http.MethodGet,
			Handler:     SearchStores(service),
			Middlewares: []func(http.Handler) http.Handler{roles.AdminOnly()},
		},
		{
			Path:        "/v1/partners",
			Method:      http.MethodGet,
			Handler:     SearchPartners(service),
			Middlewares: []func(http.Handler) http.Handler{roles.AdminOnly()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     SearchCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{roles.Authenticated()},
		},
	}
}

func CronJobs(services CronJobServices, roles middleware.Roles) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{roles.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{roles.AdminOnly()},
		},
	}
}
