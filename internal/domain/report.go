package domain

import "time"

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type ColumnsResponse struct {
	Columns []Column `json:"columns"`
}

// PageItem é uma linha formatada para o dashboard.
// CostMicros é nil para quem não é admin e some do JSON.
type PageItem struct {
	AccountID    string  `json:"account_id"`
	CampaignID   string  `json:"campaign_id"`
	Clicks       string  `json:"clicks"`
	Conversions  string  `json:"conversions"`
	Impressions  string  `json:"impressions"`
	Interactions string  `json:"interactions"`
	Date         string  `json:"date"`
	CostMicros   *string `json:"cost_micros,omitempty"`
}

type Page struct {
	Data       []PageItem `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
	Showing    int        `json:"showing"`
	Message    string     `json:"message,omitempty"`
}

type PageQuery struct {
	Filters  *MetricFilters
	SortBy   MetricField
	SortDesc bool
	Page     int
	PageSize int
}

type StatsSummary struct {
	TotalRecords     int    `json:"total_records"`
	TotalClicks      string `json:"total_clicks"`
	TotalConversions string `json:"total_conversions"`
	TotalImpressions string `json:"total_impressions"`
	Approximate      bool   `json:"approximate"`
	SampleSize       int    `json:"sample_size"`
	Note             string `json:"note,omitempty"`
	Error            string `json:"error,omitempty"`
}

// EmptyStats é a resposta zerada usada quando não há dados ou quando algo falha
func EmptyStats() *StatsSummary {
	return &StatsSummary{
		TotalClicks:      "0",
		TotalConversions: "0",
		TotalImpressions: "0",
	}
}

type Health struct {
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
	Source               string    `json:"source"`
	CSVExists            bool      `json:"csv_exists"`
	CSVSizeMB            float64   `json:"csv_size_mb"`
	MaxRecordsPerRequest int       `json:"max_records_per_request"`
}

type CacheStatus struct {
	Enabled       bool       `json:"enabled"`
	Populated     bool       `json:"populated"`
	Version       *time.Time `json:"version,omitempty"`
	Rows          int        `json:"rows"`
	Hits          int64      `json:"hits"`
	Misses        int64      `json:"misses"`
	LastRefreshAt *time.Time `json:"last_refresh_at,omitempty"`
}
