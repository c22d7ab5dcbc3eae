package reporting

import (
	"fmt"
	"slices"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// Summarize soma cliques, conversões e impressões das primeiras sampleSize linhas em ordem
// de data. TotalRecords é sempre o total filtrado; quando a amostra é menor que o total o
// resumo é marcado como aproximado.
func Summarize(rows []domain.MetricRow, sampleSize int) *domain.StatsSummary {
	if len(rows) == 0 {
		return domain.EmptyStats()
	}

	sample := Sort(slices.Clone(rows), domain.FieldDate, false)
	if sampleSize > 0 && len(sample) > sampleSize {
		sample = sample[:sampleSize]
	}

	var clicks, conversions, impressions float64
	for i := range sample {
		clicks += sample[i].Clicks
		conversions += sample[i].Conversions
		impressions += sample[i].Impressions
	}

	summary := &domain.StatsSummary{
		TotalRecords:     len(rows),
		TotalClicks:      FormatInteger(clicks),
		TotalConversions: FormatInteger(conversions),
		TotalImpressions: FormatInteger(impressions),
		SampleSize:       len(sample),
	}

	if len(sample) < len(rows) {
		summary.Approximate = true
		summary.Note = fmt.Sprintf("Calculado com amostra de %d registros", len(sample))
	}

	return summary
}
