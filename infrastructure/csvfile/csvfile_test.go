package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUserStore_ListUsers(t *testing.T) {
	path := writeFile(t, "users.csv", "\ufeffusername,password,role\n"+
		"ana,segredo,admin\n"+
		"bruno,123, viewer\n"+
		",semnome,viewer\n"+
		"ana,outra,viewer\n")

	users, err := NewUserStore(path).ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)

	assert.Equal(t, &domain.User{Username: "ana", Password: "segredo", Role: domain.RoleAdmin}, users[0])
	assert.Equal(t, domain.Role("viewer"), users[1].Role)
	assert.Equal(t, "outra", users[2].Password)
}

func TestUserStore_MissingFile(t *testing.T) {
	store := NewUserStore(filepath.Join(t.TempDir(), "nope.csv"))

	users, err := store.ListUsers(context.Background())
	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domain.ErrUsersNotFound))
}

func TestMetricsSource_Stream(t *testing.T) {
	path := writeFile(t, "metrics.csv", "account_id,campaign_id,cost_micros,clicks,conversions,impressions,interactions,date\n"+
		"A1,C1,\"1.234,56\",10,1,100,5,2024-01-01\n"+
		"A2,C2,50,,2,200,6,2024-01-02\n"+
		"A3,C3\n")

	var rows []domain.RawMetricRow
	err := NewMetricsSource(path).Stream(context.Background(), nil, func(row domain.RawMetricRow) error {
		rows = append(rows, row)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.RawMetricRow{
		AccountID:    "A1",
		CampaignID:   "C1",
		Date:         "2024-01-01",
		Clicks:       "10",
		Conversions:  "1",
		Impressions:  "100",
		Interactions: "5",
		CostMicros:   "1.234,56",
	}, rows[0])
	assert.Equal(t, "", rows[1].Clicks)
	assert.Equal(t, "", rows[2].Date)
}

func TestMetricsSource_StreamStopsOnCallbackError(t *testing.T) {
	path := writeFile(t, "metrics.csv", "account_id,date\nA1,2024-01-01\nA2,2024-01-02\n")
	stop := errors.New("stop")

	calls := 0
	err := NewMetricsSource(path).Stream(context.Background(), nil, func(domain.RawMetricRow) error {
		calls++
		return stop
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 1, calls)
}

func TestMetricsSource_MissingFile(t *testing.T) {
	source := NewMetricsSource(filepath.Join(t.TempDir(), "metrics.csv"))

	err := source.Stream(context.Background(), nil, func(domain.RawMetricRow) error { return nil })
	assert.True(t, errors.Is(err, domain.ErrSourceNotFound))

	info := source.Info(context.Background())
	assert.False(t, info.Exists)
	assert.Zero(t, info.SizeBytes)
	assert.Equal(t, SourceKind, info.Kind)
}

func TestMetricsSource_Info(t *testing.T) {
	content := "account_id,date\nA1,2024-01-01\n"
	path := writeFile(t, "metrics.csv", content)

	info := NewMetricsSource(path).Info(context.Background())
	assert.True(t, info.Exists)
	assert.Equal(t, int64(len(content)), info.SizeBytes)
	assert.False(t, info.ModTime.IsZero())
}

func TestMetricsSource_BadLineKeepsCorrelationID(t *testing.T) {
	log.SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, correlationID := log.WithCorrelationID(context.Background())

	var rows []domain.RawMetricRow
	onBadLine := badLine(ctx, func(row domain.RawMetricRow) error {
		rows = append(rows, row)
		return nil
	})
	onBadLine(errors.New("bare quote"))

	require.Len(t, rows, 1)
	assert.Equal(t, domain.RawMetricRow{}, rows[0])

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, correlationID, entry.Data["correlation_id"])
}
