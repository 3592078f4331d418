package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-dashboard-api/internal/api/handler"
	"github.com/vfg2006/delivery-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/delivery-dashboard-api/internal/config"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/directory"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/delivery-dashboard-api/pkg/middleware"
)

// Services reúne os casos de uso expostos pela API
type Services struct {
	Insights    insighting.Insighter
	Overview    performance.Overviewer
	Ranking     ranking.RankingService
	Directory   directory.Searcher
	Cron        handler.CronJobServices
	HealthCheck map[string]handler.HealthCheck
}

type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	services Services,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) (*Server, error) {
	roles := middleware.NewRoles(cfg.Auth.AdminRoles)

	rt := router.New(
		router.WithInstrumentation(m.InstrumentRoute),
		router.WithRoutes(handler.Healthcheck(services.HealthCheck, m.Handler())...),
		router.WithRoutes(handler.Insights(services.Insights, roles)...),
		router.WithRoutes(handler.Dashboard(services.Overview, roles)...),
		router.WithRoutes(handler.Rankings(services.Ranking, roles)...),
		router.WithRoutes(handler.Directory(services.Directory, roles)...),
		router.WithRoutes(handler.CronJobs(services.Cron, roles)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins...),
	}

	if limiter != nil {
		middlewares = append(middlewares, limiter.Middleware())
	}

	middlewares = append(middlewares, middleware.AuthMiddleware(middleware.NewTokenVerifier(cfg.Auth.Secret)))

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
