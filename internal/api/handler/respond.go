package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
	"github.com/vfg2006/delivery-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato da API.
// Fonte sem registros nunca vira resposta zerada.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		logger.Warn("Requisição com dados inválidos")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, vErr.Error(), map[string]any{"field": vErr.Field})
	case domain.IsSourceError(err):
		logger.Error("Falha ao consultar a fonte de dados")
		apiErrors.WriteError(w, apiErrors.ErrDataSourceFailure, "Fonte de dados indisponível", nil)
	case errors.Is(err, domain.ErrNoData):
		logger.Info("Sem dados para a consulta")
		apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Dados indisponíveis", nil)
	default:
		logger.Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// dateParam lê uma data yyyy-mm-dd da query string. Parâmetro ausente retorna nil.
func dateParam(r *http.Request, name string) (*time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}

	date, err := utils.ParseDate(value)
	if err != nil {
		return nil, domain.NewValidationError(name, -1, "formato esperado yyyy-mm-dd")
	}

	return date, nil
}

// intParam lê um inteiro da query string. Parâmetro ausente retorna 0.
func intParam(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewValidationError(name, -1, "deve ser um número inteiro")
	}

	return n, nil
}
