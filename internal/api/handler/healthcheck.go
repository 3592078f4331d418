package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthCheck verifica uma dependência (banco, cache)
type HealthCheck func(ctx context.Context) error

const healthcheckTimeout = 2 * time.Second

func HealthcheckHandler(checks map[string]HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))

		for name, check := range checks {
			if err := check(ctx); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		writeJSON(w, r, status, map[string]any{
			"time":   time.Now().Format(time.RFC3339),
			"checks": results,
		})
	})
}
