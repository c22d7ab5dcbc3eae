package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestNormalizeNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "1.234,56", want: 1234.56},
		{input: "1,234.56", want: 1234.56},
		{input: "50", want: 50},
		{input: "", want: 0},
		{input: "   ", want: 0},
		{input: "1,5", want: 1.5},
		{input: "1.5", want: 1.5},
		{input: "1.234.567,89", want: 1234567.89},
		{input: "1,234,567.89", want: 1234567.89},
		{input: " 42 ", want: 42},
		{input: "-3,25", want: -3.25},
		{input: "abc", want: 0},
		{input: "12,abc", want: 0},
		{input: "NaN", want: 0},
		{input: "Inf", want: 0},
		{input: "0x1p4", want: 0},
		{input: "0X10", want: 0},
		{input: "1_000", want: 0},
		{input: "1e3", want: 1000},
		{input: "+2,5", want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeNumber(tt.input), 1e-9)
		})
	}
}

func TestParseMetricRow(t *testing.T) {
	row, err := ParseMetricRow(domain.RawMetricRow{
		AccountID:   "A1",
		CampaignID:  "C1",
		Date:        "2024-01-02",
		Clicks:      "1.000,5",
		Impressions: "não é número",
		CostMicros:  "",
	})
	require.NoError(t, err)

	assert.Equal(t, "A1", row.AccountID)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), row.Date)
	assert.Equal(t, 1000.5, row.Clicks)
	assert.Zero(t, row.Impressions)
	assert.Zero(t, row.CostMicros)
	assert.Zero(t, row.Conversions)
}

func TestParseMetricRow_InvalidDate(t *testing.T) {
	for _, date := range []string{"", "02/01/2024", "2024-13-01", "ontem"} {
		_, err := ParseMetricRow(domain.RawMetricRow{Date: date, Clicks: "10"})
		assert.ErrorIs(t, err, domain.ErrUnparsableRow, date)
	}
}
