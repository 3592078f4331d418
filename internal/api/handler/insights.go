package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
)

func insightFilters(r *http.Request) (*domain.InsightFilters, error) {
	startDate, err := dateParam(r, "start_date")
	if err != nil {
		return nil, err
	}

	endDate, err := dateParam(r, "end_date")
	if err != nil {
		return nil, err
	}

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func GetCampaignDailyPerformance(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		log.ForContext(r.Context()).WithField("campaign_id", id).Debug("insights: buscando desempenho diário")

		filters, err := insightFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		response, err := service.GetCampaignDailyPerformance(r.Context(), id, filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func GetCampaignSummary(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := insightFilters(r)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		summary, err := service.GetCampaignSummary(r.Context(), id, filters)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}
