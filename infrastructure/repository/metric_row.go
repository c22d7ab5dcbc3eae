package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

const SourceKind = "postgres"

// undefined_table
const pqUndefinedTable = "42P01"

// As colunas saem como texto para seguir o mesmo caminho de normalização do CSV
var metricColumns = []string{
	"COALESCE(account_id::text, '') AS account_id",
	"COALESCE(campaign_id::text, '') AS campaign_id",
	"COALESCE(date::text, '') AS date",
	"COALESCE(clicks::text, '') AS clicks",
	"COALESCE(conversions::text, '') AS conversions",
	"COALESCE(impressions::text, '') AS impressions",
	"COALESCE(interactions::text, '') AS interactions",
	"COALESCE(cost_micros::text, '') AS cost_micros",
}

// MetricRowRepository lê as métricas de uma tabela com as mesmas colunas do metrics.csv
type MetricRowRepository struct {
	conn  *postgres.Connection
	table string
}

func NewMetricRowRepository(conn *postgres.Connection, table string) *MetricRowRepository {
	return &MetricRowRepository{
		conn:  conn,
		table: table,
	}
}

func (r *MetricRowRepository) streamQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(metricColumns...).
		From(pq.QuoteIdentifier(r.table)).
		PlaceholderFormat(squirrel.Dollar)
}

// Stream lê a tabela inteira, como o CSV. O filtro de datas fica com o loader para que
// datas inválidas fora do intervalo continuem contadas como Unparsable.
func (r *MetricRowRepository) Stream(ctx context.Context, _ *domain.MetricFilters, fn func(domain.RawMetricRow) error) error {
	query, args, err := r.streamQuery().ToSql()
	if err != nil {
		return err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUndefinedTable {
			return errors.Wrap(domain.ErrSourceNotFound, pqErr.Message)
		}
		return errors.Wrap(err, "repository: erro ao consultar métricas")
	}
	defer rows.Close()

	for rows.Next() {
		var raw domain.RawMetricRow
		if err := rows.Scan(
			&raw.AccountID,
			&raw.CampaignID,
			&raw.Date,
			&raw.Clicks,
			&raw.Conversions,
			&raw.Impressions,
			&raw.Interactions,
			&raw.CostMicros,
		); err != nil {
			return errors.Wrap(err, "repository: erro ao ler linha de métricas")
		}

		if err := fn(raw); err != nil {
			return err
		}
	}

	return rows.Err()
}

// Info usa o tamanho da tabela como tamanho da fonte. Tabelas não têm data de
// modificação, então o snapshot em memória não é usado para esta fonte.
func (r *MetricRowRepository) Info(ctx context.Context) domain.SourceInfo {
	info := domain.SourceInfo{Kind: SourceKind}

	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr("pg_total_relation_size(?::regclass)", pq.QuoteIdentifier(r.table))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return info
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&info.SizeBytes); err != nil {
		log.ForContext(ctx).WithError(err).Warn("repository: tabela de métricas indisponível")
		return info
	}

	info.Exists = true
	return info
}
