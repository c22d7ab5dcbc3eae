package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

const importBatchSize = 500

var importColumns = []string{
	"account_id",
	"campaign_id",
	"date",
	"clicks",
	"conversions",
	"impressions",
	"interactions",
	"cost_micros",
}

// CreateTable cria a tabela de métricas se ainda não existir.
// Tudo em texto: os valores ficam como vieram do CSV e a normalização continua no loader.
func (r *MetricRowRepository) CreateTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	account_id TEXT,
	campaign_id TEXT,
	date TEXT,
	clicks TEXT,
	conversions TEXT,
	impressions TEXT,
	interactions TEXT,
	cost_micros TEXT
)`, pq.QuoteIdentifier(r.table))

	if _, err := r.conn.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "repository: erro ao criar tabela de métricas")
	}

	return nil
}

func (r *MetricRowRepository) insertQuery(rows []domain.RawMetricRow) squirrel.InsertBuilder {
	queryBuilder := squirrel.
		Insert(pq.QuoteIdentifier(r.table)).
		Columns(importColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, raw := range rows {
		queryBuilder = queryBuilder.Values(
			raw.AccountID,
			raw.CampaignID,
			raw.Date,
			raw.Clicks,
			raw.Conversions,
			raw.Impressions,
			raw.Interactions,
			raw.CostMicros,
		)
	}

	return queryBuilder
}

// Import grava as linhas em lotes dentro de uma única transação.
// Com truncate, o conteúdo anterior da tabela é apagado antes.
func (r *MetricRowRepository) Import(ctx context.Context, rows []domain.RawMetricRow, truncate bool) (int, error) {
	logger := log.ForContext(ctx)
	startTime := time.Now()

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "repository: erro ao iniciar transação")
	}
	defer func() { _ = tx.Rollback() }()

	if truncate {
		if _, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+pq.QuoteIdentifier(r.table)); err != nil {
			return 0, errors.Wrap(err, "repository: erro ao limpar tabela de métricas")
		}
	}

	inserted := 0
	for start := 0; start < len(rows); start += importBatchSize {
		end := min(start+importBatchSize, len(rows))

		query, args, err := r.insertQuery(rows[start:end]).ToSql()
		if err != nil {
			return 0, err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, errors.Wrapf(err, "repository: erro ao inserir linhas %d-%d", start+1, end)
		}

		inserted += end - start
		logger.Debugf("Progresso: %d/%d linhas importadas", inserted, len(rows))
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "repository: erro ao confirmar importação")
	}

	logger.WithFields(log.Fields{
		"processed":   inserted,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("repository: importação de métricas concluída")

	return inserted, nil
}
