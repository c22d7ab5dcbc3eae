package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/csvfile"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// Copia o metrics.csv para a tabela lida quando METRICS_SOURCE=postgres
func main() {
	cfg, err := config.NewToolConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	file := pflag.String("file", cfg.Data.MetricsFile, "CSV de métricas a importar")
	table := pflag.String("table", cfg.Data.MetricsTable, "tabela de destino")
	truncate := pflag.Bool("truncate", false, "apaga as linhas existentes antes de importar")
	pflag.Parse()

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando importação de métricas...")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rows, err := readRows(ctx, *file)
	if err != nil {
		logrus.WithError(err).WithField("file", *file).Fatal("Erro ao ler CSV de métricas")
	}
	logrus.Infof("%d linhas lidas de %s", len(rows), *file)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	repo := repository.NewMetricRowRepository(conn, *table)

	if err := repo.CreateTable(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar tabela")
	}

	inserted, err := repo.Import(ctx, rows, *truncate)
	if err != nil {
		logrus.WithError(err).Fatal("Importação abortada")
	}

	logrus.WithFields(logrus.Fields{
		"table":    *table,
		"inserted": inserted,
	}).Info("Importação concluída")
}

// readRows lê o arquivo inteiro. Linhas malformadas chegam vazias e são descartadas.
func readRows(ctx context.Context, path string) ([]domain.RawMetricRow, error) {
	rows := make([]domain.RawMetricRow, 0)

	err := csvfile.NewMetricsSource(path).Stream(ctx, nil, func(raw domain.RawMetricRow) error {
		if raw == (domain.RawMetricRow{}) {
			return nil
		}
		rows = append(rows, raw)
		return nil
	})

	return rows, err
}
