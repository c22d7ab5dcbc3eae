package domain

import (
	"errors"
	"time"
)

var ErrUnparsableRow = errors.New("linha com data inválida")

type MetricField string

const (
	FieldDate         MetricField = "date"
	FieldAccountID    MetricField = "account_id"
	FieldCampaignID   MetricField = "campaign_id"
	FieldClicks       MetricField = "clicks"
	FieldConversions  MetricField = "conversions"
	FieldImpressions  MetricField = "impressions"
	FieldInteractions MetricField = "interactions"
	FieldCostMicros   MetricField = "cost_micros"
)

// NumericFields lista os campos normalizados pelo loader
var NumericFields = []MetricField{
	FieldCostMicros,
	FieldClicks,
	FieldConversions,
	FieldImpressions,
	FieldInteractions,
}

// RawMetricRow guarda os valores exatamente como vieram da fonte.
// Colunas ausentes ficam com string vazia.
type RawMetricRow struct {
	AccountID    string
	CampaignID   string
	Date         string
	Clicks       string
	Conversions  string
	Impressions  string
	Interactions string
	CostMicros   string
}

type MetricRow struct {
	AccountID    string    `json:"account_id"`
	CampaignID   string    `json:"campaign_id"`
	Date         time.Time `json:"date"`
	Clicks       float64   `json:"clicks"`
	Conversions  float64   `json:"conversions"`
	Impressions  float64   `json:"impressions"`
	Interactions float64   `json:"interactions"`
	CostMicros   float64   `json:"cost_micros"`
}

// Number retorna o valor numérico do campo. ok é falso para campos não numéricos.
func (m *MetricRow) Number(field MetricField) (float64, bool) {
	switch field {
	case FieldClicks:
		return m.Clicks, true
	case FieldConversions:
		return m.Conversions, true
	case FieldImpressions:
		return m.Impressions, true
	case FieldInteractions:
		return m.Interactions, true
	case FieldCostMicros:
		return m.CostMicros, true
	}

	return 0, false
}

type MetricFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Contains aplica os limites inclusivos do filtro. Limites nulos são ignorados.
func (f *MetricFilters) Contains(date time.Time) bool {
	if f == nil {
		return true
	}

	if f.StartDate != nil && date.Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && date.After(*f.EndDate) {
		return false
	}

	return true
}

// SourceInfo descreve o estado da fonte de métricas
type SourceInfo struct {
	Kind      string
	Exists    bool
	SizeBytes int64
	ModTime   time.Time
}

// ErrSourceNotFound indica que a fonte de métricas não existe (arquivo ausente, tabela ausente)
var ErrSourceNotFound = errors.New("fonte de métricas não encontrada")
