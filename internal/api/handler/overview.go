package handler

import (
	"net/http"

	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/performance"
)

// GetDashboardOverview retorna os snapshots recentes e a variação de cada indicador
func GetDashboardOverview(service performance.Overviewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days, err := intParam(r, "days")
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		overview, err := service.GetOverview(r.Context(), days)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, overview)
	})
}
