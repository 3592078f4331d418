package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/database/redis"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/integrator/platform"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/delivery-dashboard-api/internal/api"
	"github.com/vfg2006/delivery-dashboard-api/internal/api/handler"
	"github.com/vfg2006/delivery-dashboard-api/internal/config"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
	"github.com/vfg2006/delivery-dashboard-api/internal/scheduler"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/directory"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/performance"
	"github.com/vfg2006/delivery-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/delivery-dashboard-api/pkg/log"
	"github.com/vfg2006/delivery-dashboard-api/pkg/middleware"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	checks := map[string]handler.HealthCheck{
		"database": pgConn.Ping,
	}

	var cache redis.Cache
	if cfg.Redis.Enabled {
		redisConn, err := redis.NewConnection(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("Redis indisponível, relatórios seguem sem cache")
		} else {
			defer redisConn.Close()
			cache = redisConn
			checks["redis"] = redisConn.Health
		}
	}

	m := metrics.New(nil)

	eventRepo := eventSource(cfg, pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	partnerRepo := repository.NewPartnerRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	storeRankingRepo := repository.NewStoreRankingRepository(pgConn)

	location := cfg.Reporting.Location()

	insightService := insighting.NewService(eventRepo, m, location)
	if cache != nil {
		insightService = insightService.WithCache(cache, cfg.Cache.TTL)
	}

	overviewService := performance.NewService(
		snapshotRepo,
		eventRepo,
		partnerRepo,
		storeRepo,
		activityRepo,
		m,
		performance.Options{
			DefaultDays: cfg.Reporting.OverviewDays,
			MaxDays:     cfg.Reporting.MaxOverviewDays,
			Location:    location,
		},
	)

	rankingService := ranking.NewService(campaignRepo, storeRankingRepo, cfg.Reporting.DefaultTopN)
	directoryService := directory.NewService(storeRepo, partnerRepo, campaignRepo)

	dailyPerformanceSyncService := scheduler.NewDailyPerformanceSyncService(overviewService, m, cfg)
	storeRankingSyncService := scheduler.NewStoreRankingSyncService(eventRepo, storeRepo, storeRankingRepo, m, cfg)

	// Inicia os agendadores em background
	if err := dailyPerformanceSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do snapshot diário")
	} else {
		logrus.Info("Agendador do snapshot diário iniciado com sucesso")
	}

	if err := storeRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de lojas")
	} else {
		logrus.Info("Agendador do ranking de lojas iniciado com sucesso")
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, m.RateLimitHits.Inc)
		limiter.StartCleanup(ctx, 5*time.Minute)
	}

	server, err := api.New(cfg, api.Services{
		Insights:  insightService,
		Overview:  overviewService,
		Ranking:   rankingService,
		Directory: directoryService,
		Cron: handler.CronJobServices{
			DailyPerformanceSyncService: dailyPerformanceSyncService,
			StoreRankingSyncService:     storeRankingSyncService,
		},
		HealthCheck: checks,
	}, m, limiter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite achar o .env local quando executado com go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// eventSource escolhe de onde vêm os eventos brutos (DATA_SOURCE)
func eventSource(cfg *config.Config, conn *postgres.Connection) repository.EventRepository {
	if cfg.App.DataSource == config.DataSourcePlatform {
		logrus.WithField("url", cfg.Platform.URL).Info("Eventos lidos pela API REST da plataforma")
		return platform.New(platform.NewClient(cfg.Platform))
	}

	logrus.Info("Eventos lidos diretamente do PostgreSQL")
	return repository.NewEventRepository(conn)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
