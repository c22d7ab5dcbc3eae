package reporting

import (
	"math"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const emptyPageMessage = "Nenhum dado encontrado"

var (
	// Ponto agrupa milhar, vírgula separa decimais
	decimalPrinter = message.NewPrinter(language.BrazilianPortuguese)
	integerPrinter = message.NewPrinter(language.English)
)

var baseColumns = []domain.Column{
	{Key: string(domain.FieldAccountID), Label: "Account ID"},
	{Key: string(domain.FieldCampaignID), Label: "Campaign ID"},
	{Key: string(domain.FieldClicks), Label: "Clicks"},
	{Key: string(domain.FieldConversions), Label: "Conversions"},
	{Key: string(domain.FieldImpressions), Label: "Impressions"},
	{Key: string(domain.FieldInteractions), Label: "Interactions"},
	{Key: string(domain.FieldDate), Label: "Date"},
}

var costColumn = domain.Column{Key: string(domain.FieldCostMicros), Label: "Cost (Micros)"}

// FormatDecimal formata no padrão brasileiro com duas casas: 1234.5 -> "1.234,50"
func FormatDecimal(value float64) string {
	if value == 0 {
		return "0,00"
	}
	return decimalPrinter.Sprintf("%.2f", value)
}

// FormatInteger arredonda para o inteiro mais próximo e agrupa milhares: 1234.6 -> "1,235".
// Formata o float direto: somas acima de int64 não podem trocar de sinal.
func FormatInteger(value float64) string {
	rounded := math.Round(value)
	if rounded == 0 {
		rounded = 0 // sem "-0"
	}
	return integerPrinter.Sprintf("%.0f", rounded)
}

// Columns lista as colunas visíveis para o papel. cost_micros só para admin.
func Columns(role domain.Role) []domain.Column {
	columns := make([]domain.Column, 0, len(baseColumns)+1)
	columns = append(columns, baseColumns[:2]...)
	if role.IsAdmin() {
		columns = append(columns, costColumn)
	}
	return append(columns, baseColumns[2:]...)
}

// PresentRow formata uma linha. Para quem não é admin, cost_micros fica ausente.
func PresentRow(row *domain.MetricRow, role domain.Role) domain.PageItem {
	item := domain.PageItem{
		AccountID:    row.AccountID,
		CampaignID:   row.CampaignID,
		Clicks:       FormatDecimal(row.Clicks),
		Conversions:  FormatDecimal(row.Conversions),
		Impressions:  FormatDecimal(row.Impressions),
		Interactions: FormatDecimal(row.Interactions),
		Date:         row.Date.Format(utils.DateLayout),
	}

	if role.IsAdmin() {
		cost := FormatDecimal(row.CostMicros)
		item.CostMicros = &cost
	}

	return item
}

func PresentRows(rows []domain.MetricRow, role domain.Role) []domain.PageItem {
	items := make([]domain.PageItem, 0, len(rows))
	for i := range rows {
		items = append(items, PresentRow(&rows[i], role))
	}
	return items
}
