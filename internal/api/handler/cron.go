package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/delivery-dashboard-api/internal/scheduler"
	"github.com/vfg2006/delivery-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailyPerformance = scheduler.JobDailyPerformance
	CronJobTypeStoreRanking     = scheduler.JobStoreRanking
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailyPerformanceSyncService scheduler.ManualSyncer
	StoreRankingSyncService     scheduler.ManualSyncer
}

func (s CronJobServices) byType() map[string]scheduler.ManualSyncer {
	services := make(map[string]scheduler.ManualSyncer, 2)
	if s.DailyPerformanceSyncService != nil {
		services[CronJobTypeDailyPerformance] = s.DailyPerformanceSyncService
	}
	if s.StoreRankingSyncService != nil {
		services[CronJobTypeStoreRanking] = s.StoreRankingSyncService
	}
	return services
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		log.ForContext(r.Context()).WithField("job", cronType).Info("Execução manual de cron solicitada")

		available := services.byType()

		switch cronType {
		case CronJobTypeAll:
			for _, service := range available {
				service.TriggerManualSync()
			}
		case CronJobTypeDailyPerformance, CronJobTypeStoreRanking:
			service, exists := available[cronType]
			if !exists {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
				return
			}
			service.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily-performance, store-ranking, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, service := range services.byType() {
			status[name] = service.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
