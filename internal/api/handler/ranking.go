package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/ranking"
)

func GetTopCampaigns(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := intParam(r, "limit")
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		top, err := service.GetTopCampaigns(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, top)
	})
}

// GetStoreRanking retorna o ranking das lojas por faturamento no mês
func GetStoreRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, err := service.GetStoreRanking(r.Context(), r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func GetStorePosition(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		item, err := service.GetStorePosition(r.Context(), storeID, r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, item)
	})
}
