package reporting

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// NormalizeNumber converte um número em formato ambíguo ("1.234,56" ou "1,234.56") para float64.
// Sem vírgula, o valor é lido como número comum. Com vírgula, o separador mais à direita
// é o decimal e o outro é removido como separador de milhar. Valores vazios ou inválidos viram 0.
func NormalizeNumber(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	// ParseFloat aceita hexadecimal, "_" e "Inf"; a planilha só tem dígitos, sinal,
	// separadores e expoente
	if strings.IndexFunc(value, isNotNumeric) >= 0 {
		return 0
	}

	if strings.Contains(value, ",") {
		decimal, thousands := ",", "."
		if strings.LastIndex(value, ".") > strings.LastIndex(value, ",") {
			decimal, thousands = ".", ","
		}

		value = strings.ReplaceAll(value, thousands, "")
		value = strings.Replace(value, decimal, ".", 1)
	}

	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}

	return number
}

func isNotNumeric(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '.', r == ',', r == '+', r == '-', r == 'e', r == 'E':
		return false
	}
	return true
}

// ParseMetricRow monta a linha tipada. Data fora do formato YYYY-MM-DD descarta a linha
// (domain.ErrUnparsableRow); campos numéricos nunca descartam, viram 0.
func ParseMetricRow(raw domain.RawMetricRow) (domain.MetricRow, error) {
	date, err := time.Parse(utils.DateLayout, raw.Date)
	if err != nil {
		return domain.MetricRow{}, domain.ErrUnparsableRow
	}

	return domain.MetricRow{
		AccountID:    raw.AccountID,
		CampaignID:   raw.CampaignID,
		Date:         date,
		Clicks:       NormalizeNumber(raw.Clicks),
		Conversions:  NormalizeNumber(raw.Conversions),
		Impressions:  NormalizeNumber(raw.Impressions),
		Interactions: NormalizeNumber(raw.Interactions),
		CostMicros:   NormalizeNumber(raw.CostMicros),
	}, nil
}
