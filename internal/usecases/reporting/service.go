package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

var (
	ErrCacheDisabled    = errors.New("cache de métricas desabilitado")
	ErrCacheUnsupported = errors.New("fonte de métricas não informa data de modificação")
)

type Options struct {
	MaxRecordsPerRequest int
	StatsSampleSize      int
}

var _ Reporter = (*Service)(nil)

type Service struct {
	source  Source
	loader  *Loader
	cache   *SnapshotCache
	options Options
}

// NewService cria o caso de uso. cache nil desabilita o snapshot em memória.
func NewService(source Source, cache *SnapshotCache, options Options) *Service {
	return &Service{
		source:  source,
		loader:  NewLoader(source, cache),
		cache:   cache,
		options: options,
	}
}

func (s *Service) GetPage(ctx context.Context, query *domain.PageQuery, role domain.Role) (*domain.Page, error) {
	logger := log.ForContext(ctx)

	result, err := s.loader.Load(ctx, query.Filters)
	if err != nil {
		return nil, errors.Wrap(err, "reporting: erro ao carregar métricas")
	}

	rows := Sort(result.Rows, query.SortBy, query.SortDesc)
	window := Paginate(rows, query.Page, query.PageSize, s.options.MaxRecordsPerRequest)
	items := PresentRows(window.Rows, role)

	page := &domain.Page{
		Data:       items,
		Total:      len(rows),
		Page:       window.Page,
		PageSize:   window.PageSize,
		TotalPages: window.TotalPages,
		Showing:    len(items),
	}

	if len(items) == 0 {
		page.Message = emptyPageMessage
		logger.WithFields(log.Fields{
			"page":      window.Page,
			"page_size": window.PageSize,
		}).Warn("reporting: nenhum dado encontrado")
		return page, nil
	}

	logger.WithFields(log.Fields{
		"page":      window.Page,
		"page_size": window.PageSize,
	}).Infof("reporting: retornando %d registros (página %d de %d)", len(items), window.Page, window.TotalPages)

	return page, nil
}

// GetStats nunca propaga erro, ao contrário de GetPage: o dashboard mostra zeros e a mensagem.
func (s *Service) GetStats(ctx context.Context, filters *domain.MetricFilters) (stats *domain.StatsSummary) {
	logger := log.ForContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("error", r).Error("reporting: erro ao calcular estatísticas")
			stats = domain.EmptyStats()
			stats.Error = fmt.Sprint(r)
		}
	}()

	result, err := s.loader.Load(ctx, filters)
	if err != nil {
		logger.WithError(err).Error("reporting: erro ao calcular estatísticas")
		stats = domain.EmptyStats()
		stats.Error = err.Error()
		return stats
	}

	return Summarize(result.Rows, s.options.StatsSampleSize)
}

func (s *Service) Columns(role domain.Role) []domain.Column {
	return Columns(role)
}

func (s *Service) Health(ctx context.Context) *domain.Health {
	info := s.source.Info(ctx)

	return &domain.Health{
		Status:               "healthy",
		Timestamp:            time.Now().UTC(),
		Source:               info.Kind,
		CSVExists:            info.Exists,
		CSVSizeMB:            utils.BytesToMegabytes(info.SizeBytes),
		MaxRecordsPerRequest: s.options.MaxRecordsPerRequest,
	}
}

// RefreshCache recarrega o snapshot se a fonte mudou. Retorna true quando houve recarga.
func (s *Service) RefreshCache(ctx context.Context) (bool, error) {
	if s.cache == nil {
		return false, ErrCacheDisabled
	}

	info := s.source.Info(ctx)
	if !info.Exists {
		s.cache.Invalidate()
		return false, domain.ErrSourceNotFound
	}

	if info.ModTime.IsZero() {
		return false, ErrCacheUnsupported
	}

	if status := s.cache.Status(); status.Version != nil && status.Version.Equal(info.ModTime) {
		return false, nil
	}

	if _, err := s.loader.buildSnapshot(ctx, info.ModTime); err != nil {
		return false, errors.Wrap(err, "reporting: erro ao recarregar snapshot")
	}

	return true, nil
}

func (s *Service) CacheStatus() domain.CacheStatus {
	if s.cache == nil {
		return domain.CacheStatus{}
	}
	return s.cache.Status()
}
