package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func rawRows(n int) []domain.RawMetricRow {
	rows := make([]domain.RawMetricRow, n)
	for i := range rows {
		rows[i] = domain.RawMetricRow{AccountID: "A", CampaignID: "C", Date: "2024-01-01", Clicks: "1,5"}
	}
	return rows
}

func TestMetricRowRepository_CreateTable(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "metrics"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.CreateTable(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetricRowRepository_insertQuery(t *testing.T) {
	repo := &MetricRowRepository{table: "metrics"}

	query, args, err := repo.insertQuery(rawRows(2)).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		`INSERT INTO "metrics" (account_id,campaign_id,date,clicks,conversions,impressions,interactions,cost_micros) `+
			`VALUES ($1,$2,$3,$4,$5,$6,$7,$8),($9,$10,$11,$12,$13,$14,$15,$16)`,
		query)
	assert.Len(t, args, 16)
	assert.Equal(t, "1,5", args[3])
}

func TestMetricRowRepository_Import(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		truncate bool
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, inserted int, err error)
	}{
		{
			name:     "Dois lotes com truncate",
			rows:     importBatchSize + 1,
			truncate: true,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`TRUNCATE TABLE "metrics"`)).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "metrics"`)).WillReturnResult(sqlmock.NewResult(0, importBatchSize))
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "metrics"`)).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, inserted int, err error) {
				require.NoError(t, err)
				assert.Equal(t, importBatchSize+1, inserted)
			},
		},
		{
			name: "Sem linhas",
			rows: 0,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			validate: func(t *testing.T, inserted int, err error) {
				require.NoError(t, err)
				assert.Zero(t, inserted)
			},
		},
		{
			name: "Falha no insert desfaz a transação",
			rows: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT").WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			validate: func(t *testing.T, inserted int, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "linhas 1-3")
				assert.Zero(t, inserted)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setup(mock)

			inserted, err := repo.Import(context.Background(), rawRows(tt.rows), tt.truncate)
			tt.validate(t, inserted, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
