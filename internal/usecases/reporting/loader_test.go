package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

// streamOf simula uma fonte que entrega as linhas na ordem dada
func streamOf(rows ...domain.RawMetricRow) func(context.Context, *domain.MetricFilters, func(domain.RawMetricRow) error) error {
	return func(_ context.Context, _ *domain.MetricFilters, fn func(domain.RawMetricRow) error) error {
		for _, row := range rows {
			if err := fn(row); err != nil {
				return err
			}
		}
		return nil
	}
}

func rawRow(account, date, clicks string) domain.RawMetricRow {
	return domain.RawMetricRow{AccountID: account, Date: date, Clicks: clicks}
}

func datePtr(d int) *time.Time {
	t := day(d)
	return &t
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	loader := NewLoader(mockSource, nil)

	rows := []domain.RawMetricRow{
		rawRow("a", "2024-01-01", "1.234,56"),
		rawRow("b", "2024-01-02", "10"),
		rawRow("c", "data ruim", "5"),
		rawRow("d", "2024-01-03", "x"),
		{},
	}

	tests := []struct {
		name     string
		filters  *domain.MetricFilters
		setup    func()
		validate func(t *testing.T, result *LoadResult, err error)
	}{
		{
			name: "Sem filtro - mantém todas as linhas com data válida",
			setup: func() {
				mockSource.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(streamOf(rows...))
			},
			validate: func(t *testing.T, result *LoadResult, err error) {
				require.NoError(t, err)
				assert.Len(t, result.Rows, 3)
				assert.Equal(t, 5, result.Processed)
				assert.Equal(t, 2, result.Unparsable)
				assert.InDelta(t, 1234.56, result.Rows[0].Clicks, 1e-9)
				assert.Zero(t, result.Rows[2].Clicks)
			},
		},
		{
			name:    "Limites inclusivos",
			filters: &domain.MetricFilters{StartDate: datePtr(2), EndDate: datePtr(3)},
			setup: func() {
				mockSource.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(streamOf(rows...))
			},
			validate: func(t *testing.T, result *LoadResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"b", "d"}, ids(result.Rows))
			},
		},
		{
			name:    "Somente data final",
			filters: &domain.MetricFilters{EndDate: datePtr(1)},
			setup: func() {
				mockSource.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(streamOf(rows...))
			},
			validate: func(t *testing.T, result *LoadResult, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"a"}, ids(result.Rows))
			},
		},
		{
			name: "Fonte ausente - resultado vazio sem erro",
			setup: func() {
				mockSource.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.Wrap(domain.ErrSourceNotFound, "metrics.csv"))
			},
			validate: func(t *testing.T, result *LoadResult, err error) {
				require.NoError(t, err)
				assert.NotNil(t, result.Rows)
				assert.Empty(t, result.Rows)
			},
		},
		{
			name: "Erro no meio da leitura - resultado vazio sem erro",
			setup: func() {
				mockSource.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *domain.MetricFilters, fn func(domain.RawMetricRow) error) error {
						_ = fn(rawRow("a", "2024-01-01", "1"))
						return errors.New("disco com defeito")
					})
			},
			validate: func(t *testing.T, result *LoadResult, err error) {
				require.NoError(t, err)
				assert.Empty(t, result.Rows)
				assert.Zero(t, result.Processed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			result, err := loader.Load(context.Background(), tt.filters)
			tt.validate(t, result, err)
		})
	}
}

func TestLoader_Load_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	loader := NewLoader(mockSource, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockSource.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any()).Return(context.Canceled)

	result, err := loader.Load(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestLoader_Load_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	cache := NewSnapshotCache()
	loader := NewLoader(mockSource, cache)

	version := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	info := domain.SourceInfo{Kind: "csv", Exists: true, SizeBytes: 10, ModTime: version}

	// duas leituras com a mesma versão: a fonte só é lida uma vez
	mockSource.EXPECT().Info(gomock.Any()).Return(info).Times(2)
	mockSource.EXPECT().Stream(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(streamOf(rawRow("a", "2024-01-01", "1"), rawRow("b", "2024-01-02", "2"))).
		Times(1)

	all, err := loader.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Rows, 2)

	filtered, err := loader.Load(context.Background(), &domain.MetricFilters{StartDate: datePtr(2)})
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(filtered.Rows))

	status := cache.Status()
	assert.Equal(t, int64(1), status.Hits)
	assert.Equal(t, int64(1), status.Misses)
	assert.Equal(t, 2, status.Rows)

	// versão nova invalida o snapshot
	newVersion := version.Add(time.Minute)
	mockSource.EXPECT().Info(gomock.Any()).Return(domain.SourceInfo{Exists: true, ModTime: newVersion})
	mockSource.EXPECT().Stream(gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(streamOf(rawRow("c", "2024-01-03", "3")))

	reloaded, err := loader.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(reloaded.Rows))
	assert.True(t, cache.Status().Version.Equal(newVersion))
}

func TestLoader_Load_SnapshotSkippedWithoutModTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	cache := NewSnapshotCache()
	loader := NewLoader(mockSource, cache)

	filters := &domain.MetricFilters{StartDate: datePtr(1)}

	mockSource.EXPECT().Info(gomock.Any()).Return(domain.SourceInfo{Kind: "postgres", Exists: true})
	mockSource.EXPECT().Stream(gomock.Any(), filters, gomock.Any()).
		DoAndReturn(streamOf(rawRow("a", "2024-01-01", "1")))

	result, err := loader.Load(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	assert.False(t, cache.Status().Populated)
}

func TestLoadResult_FilterCopies(t *testing.T) {
	result := &LoadResult{Rows: []domain.MetricRow{{AccountID: "a", Date: day(1)}}}

	filtered := result.Filter(nil)
	filtered.Rows[0].AccountID = "alterado"

	assert.Equal(t, "a", result.Rows[0].AccountID)
}
