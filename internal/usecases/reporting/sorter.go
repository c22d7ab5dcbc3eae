package reporting

import (
	"sort"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

type lessFunc func(a, b *domain.MetricRow) bool

func lessBy(field domain.MetricField) lessFunc {
	switch field {
	case domain.FieldDate:
		return func(a, b *domain.MetricRow) bool { return a.Date.Before(b.Date) }
	case domain.FieldAccountID:
		return func(a, b *domain.MetricRow) bool { return a.AccountID < b.AccountID }
	case domain.FieldCampaignID:
		return func(a, b *domain.MetricRow) bool { return a.CampaignID < b.CampaignID }
	case domain.FieldClicks, domain.FieldConversions, domain.FieldImpressions,
		domain.FieldInteractions, domain.FieldCostMicros:
		return func(a, b *domain.MetricRow) bool {
			x, _ := a.Number(field)
			y, _ := b.Number(field)
			return x < y
		}
	}

	return nil
}

// IsSortable indica se o campo tem ordenação definida
func IsSortable(field domain.MetricField) bool {
	return lessBy(field) != nil
}

// Sort ordena as linhas no lugar e devolve o mesmo slice. A ordenação é estável nos
// dois sentidos: chaves iguais mantêm a ordem de carga, o que deixa a paginação determinística.
// Campo desconhecido não é erro, apenas mantém a ordem original.
func Sort(rows []domain.MetricRow, field domain.MetricField, descending bool) []domain.MetricRow {
	less := lessBy(field)
	if less == nil {
		return rows
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if descending {
			return less(&rows[j], &rows[i])
		}
		return less(&rows[i], &rows[j])
	})

	return rows
}
