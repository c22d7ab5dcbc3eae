package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

var rowColumns = []string{
	"account_id", "campaign_id", "date", "clicks",
	"conversions", "impressions", "interactions", "cost_micros",
}

func init() {
	log.SetupTestLogger()
}

func newRepository(t *testing.T) (*MetricRowRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewMetricRowRepository(&postgres.Connection{DB: db}, "metrics"), mock
}

func TestMetricRowRepository_streamQuery(t *testing.T) {
	repo := &MetricRowRepository{table: "metrics"}

	query, args, err := repo.streamQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, `FROM "metrics"`)
	assert.Contains(t, query, "COALESCE(date::text, '') AS date")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

// O filtro de datas não vai para o SQL: linhas com data inválida chegam ao loader
// e são contadas como Unparsable, igual ao CSV
func TestMetricRowRepository_Stream_IgnoresDateFilter(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "metrics"`)).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow("A1", "C1", "2024-01-02", "10", "1", "100", "5", "1.5").
			AddRow("A2", "C2", "2024-01-03", "", "", "", "", "").
			AddRow("A3", "C3", "02/01/2023", "1", "1", "1", "1", "1"))

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	var got []domain.RawMetricRow
	err := repo.Stream(context.Background(), &domain.MetricFilters{StartDate: &start}, func(raw domain.RawMetricRow) error {
		got = append(got, raw)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, domain.RawMetricRow{
		AccountID: "A1", CampaignID: "C1", Date: "2024-01-02", Clicks: "10",
		Conversions: "1", Impressions: "100", Interactions: "5", CostMicros: "1.5",
	}, got[0])
	assert.Empty(t, got[1].Clicks)
	assert.Equal(t, "02/01/2023", got[2].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRowRepository_Stream_MissingTable(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("SELECT").WillReturnError(&pq.Error{Code: pqUndefinedTable, Message: `relation "metrics" does not exist`})

	err := repo.Stream(context.Background(), nil, func(domain.RawMetricRow) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRowRepository_Stream_CallbackError(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow("A1", "C1", "2024-01-02", "10", "1", "100", "5", "1").
			AddRow("A2", "C2", "2024-01-03", "10", "1", "100", "5", "1"))

	calls := 0
	err := repo.Stream(context.Background(), nil, func(domain.RawMetricRow) error {
		calls++
		return context.Canceled
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestMetricRowRepository_Info(t *testing.T) {
	t.Run("Tabela existente", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT pg_total_relation_size($1::regclass)")).
			WithArgs(`"metrics"`).
			WillReturnRows(sqlmock.NewRows([]string{"size"}).AddRow(int64(2 * 1024 * 1024)))

		info := repo.Info(context.Background())
		assert.Equal(t, SourceKind, info.Kind)
		assert.True(t, info.Exists)
		assert.Equal(t, int64(2*1024*1024), info.SizeBytes)
		assert.True(t, info.ModTime.IsZero())
	})

	t.Run("Tabela ausente", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery("pg_total_relation_size").
			WillReturnError(&pq.Error{Code: pqUndefinedTable})

		info := repo.Info(context.Background())
		assert.False(t, info.Exists)
		assert.Zero(t, info.SizeBytes)
	})
}
