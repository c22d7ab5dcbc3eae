package csvfile

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

const SourceKind = "csv"

// MetricsSource lê metrics.csv linha a linha
type MetricsSource struct {
	path string
}

func NewMetricsSource(path string) *MetricsSource {
	return &MetricsSource{path: path}
}

func (s *MetricsSource) Path() string {
	return s.path
}

// Stream chama fn para cada linha do arquivo. O filtro de datas é aplicado pelo loader.
func (s *MetricsSource) Stream(ctx context.Context, _ *domain.MetricFilters, fn func(domain.RawMetricRow) error) error {
	err := readRecords(ctx, s.path, func(r record) error {
		return fn(domain.RawMetricRow{
			AccountID:    r.get("account_id"),
			CampaignID:   r.get("campaign_id"),
			Date:         r.get("date"),
			Clicks:       r.get("clicks"),
			Conversions:  r.get("conversions"),
			Impressions:  r.get("impressions"),
			Interactions: r.get("interactions"),
			CostMicros:   r.get("cost_micros"),
		})
	}, badLine(ctx, fn))
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(domain.ErrSourceNotFound, err.Error())
	}

	return err
}

// badLine registra a linha malformada com o ID de correlação da requisição e a entrega
// sem data, para ser contada como inválida
func badLine(ctx context.Context, fn func(domain.RawMetricRow) error) func(error) {
	return func(err error) {
		log.ForContext(ctx).WithError(err).Debug("csvfile: linha malformada em metrics.csv")
		_ = fn(domain.RawMetricRow{})
	}
}

// Info informa existência, tamanho e data de modificação do arquivo
func (s *MetricsSource) Info(_ context.Context) domain.SourceInfo {
	info := domain.SourceInfo{Kind: SourceKind}

	stat, err := os.Stat(s.path)
	if err != nil {
		return info
	}

	info.Exists = true
	info.SizeBytes = stat.Size()
	info.ModTime = stat.ModTime()
	return info
}
