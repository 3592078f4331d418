package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/directory"
)

type listResponse[T any] struct {
	Query string `json:"query"`
	Total int    `json:"total"`
	Items []T    `json:"items"`
}

func search[T any](find func(ctx context.Context, query string) ([]T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		items, err := find(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, listResponse[T]{
			Query: query,
			Total: len(items),
			Items: items,
		})
	})
}

func SearchStores(service directory.Searcher) http.Handler {
	return search(func(ctx context.Context, query string) ([]domain.Store, error) {
		return service.SearchStores(ctx, query)
	})
}

func SearchPartners(service directory.Searcher) http.Handler {
	return search(func(ctx context.Context, query string) ([]domain.Partner, error) {
		return service.SearchPartners(ctx, query)
	})
}

func SearchCampaigns(service directory.Searcher) http.Handler {
	return search(func(ctx context.Context, query string) ([]domain.Campaign, error) {
		return service.SearchCampaigns(ctx, query)
	})
}
