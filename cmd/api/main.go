package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/csvfile"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/api"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/scheduler"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := metricsSource(ctx, cfg)
	defer closeSource()

	var cache *reporting.SnapshotCache
	if cfg.Cache.Enabled {
		cache = reporting.NewSnapshotCache()
		logrus.Info("Cache de métricas habilitado")
	}

	reporter := reporting.NewService(source, cache, reporting.Options{
		MaxRecordsPerRequest: cfg.Data.MaxRecordsPerRequest,
		StatsSampleSize:      cfg.Data.StatsSampleSize,
	})

	authenticator := authenticating.NewService(csvfile.NewUserStore(cfg.Auth.UsersFile), cfg)

	cacheRefreshService := scheduler.NewCacheRefreshService(reporter, cfg)
	if err := cacheRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do cache")
	}

	server, err := api.New(cfg, authenticator, reporter)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// metricsSource escolhe a origem das métricas conforme METRICS_SOURCE
func metricsSource(ctx context.Context, cfg *config.Config) (reporting.Source, func()) {
	if cfg.Data.Source == config.SourcePostgres {
		pgConn := pgconn(ctx, cfg.Database)
		logrus.WithField("table", cfg.Data.MetricsTable).Info("Métricas lidas do PostgreSQL")
		return repository.NewMetricRowRepository(pgConn, cfg.Data.MetricsTable), func() { _ = pgConn.Close() }
	}

	logrus.WithField("file", cfg.Data.MetricsFile).Info("Métricas lidas do CSV")
	return csvfile.NewMetricsSource(cfg.Data.MetricsFile), func() {}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
