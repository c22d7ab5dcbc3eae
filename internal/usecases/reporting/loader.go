package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/metrics"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

const progressLogInterval = 100000

// LoadResult é o resultado de uma leitura da fonte.
// Processed conta todas as linhas lidas, Unparsable as descartadas por data inválida.
type LoadResult struct {
	Rows       []domain.MetricRow
	Processed  int
	Unparsable int
}

func emptyResult() *LoadResult {
	return &LoadResult{Rows: make([]domain.MetricRow, 0)}
}

// Filter aplica o intervalo de datas e sempre devolve uma cópia das linhas
func (r *LoadResult) Filter(filters *domain.MetricFilters) *LoadResult {
	filtered := &LoadResult{
		Rows:       make([]domain.MetricRow, 0, len(r.Rows)),
		Processed:  r.Processed,
		Unparsable: r.Unparsable,
	}

	for _, row := range r.Rows {
		if filters.Contains(row.Date) {
			filtered.Rows = append(filtered.Rows, row)
		}
	}

	return filtered
}

// Loader lê a fonte, descarta linhas com data inválida, aplica o filtro e normaliza os números
type Loader struct {
	source Source
	cache  *SnapshotCache
}

// NewLoader cria o loader. cache pode ser nil.
func NewLoader(source Source, cache *SnapshotCache) *Loader {
	return &Loader{
		source: source,
		cache:  cache,
	}
}

// Load nunca falha por causa da fonte: arquivo ausente ou ilegível vira resultado vazio com log.
// Só o cancelamento do contexto é devolvido como erro.
func (l *Loader) Load(ctx context.Context, filters *domain.MetricFilters) (*LoadResult, error) {
	if l.cache != nil {
		info := l.source.Info(ctx)
		if info.Exists && !info.ModTime.IsZero() {
			return l.loadFromSnapshot(ctx, info.ModTime, filters)
		}
	}

	result, err := l.stream(ctx, filters)
	if err != nil {
		return l.softFail(ctx, err)
	}

	return result, nil
}

func (l *Loader) loadFromSnapshot(ctx context.Context, version time.Time, filters *domain.MetricFilters) (*LoadResult, error) {
	if snapshot, ok := l.cache.Get(version); ok {
		return snapshot.Result.Filter(filters), nil
	}

	snapshot, err := l.buildSnapshot(ctx, version)
	if err != nil {
		return l.softFail(ctx, err)
	}

	return snapshot.Result.Filter(filters), nil
}

// buildSnapshot lê a fonte inteira e guarda no cache
func (l *Loader) buildSnapshot(ctx context.Context, version time.Time) (*Snapshot, error) {
	result, err := l.stream(ctx, nil)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Version:  version,
		Result:   result,
		LoadedAt: time.Now(),
	}
	l.cache.Store(snapshot)

	log.ForContext(ctx).WithFields(log.Fields{
		"version":   version,
		"processed": result.Processed,
	}).Info("reporting: snapshot de métricas atualizado")

	return snapshot, nil
}

func (l *Loader) softFail(ctx context.Context, err error) (*LoadResult, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	logger := log.ForContext(ctx).WithError(err)
	if errors.Is(err, domain.ErrSourceNotFound) {
		logger.Error("reporting: fonte de métricas não encontrada")
	} else {
		logger.Error("reporting: erro ao carregar métricas")
	}

	return emptyResult(), nil
}

func (l *Loader) stream(ctx context.Context, filters *domain.MetricFilters) (*LoadResult, error) {
	logger := log.ForContext(ctx)
	startTime := time.Now()
	result := emptyResult()

	err := l.source.Stream(ctx, filters, func(raw domain.RawMetricRow) error {
		result.Processed++

		if result.Processed%progressLogInterval == 0 {
			logger.WithFields(log.Fields{
				"processed": result.Processed,
				"filtered":  len(result.Rows),
			}).Debug("reporting: carregamento em andamento")
		}

		row, err := ParseMetricRow(raw)
		if err != nil {
			result.Unparsable++
			return nil
		}

		if !filters.Contains(row.Date) {
			return nil
		}

		result.Rows = append(result.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	kept := len(result.Rows)
	metrics.ObserveLoad(kept, result.Processed-kept-result.Unparsable, result.Unparsable, time.Since(startTime))

	logger.WithFields(log.Fields{
		"processed":  result.Processed,
		"filtered":   kept,
		"unparsable": result.Unparsable,
	}).Info("reporting: carregamento concluído")

	return result, nil
}
