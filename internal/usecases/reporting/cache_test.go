package reporting

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestSnapshotCache(t *testing.T) {
	cache := NewSnapshotCache()
	version := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := cache.Get(version)
	assert.False(t, ok)

	status := cache.Status()
	assert.True(t, status.Enabled)
	assert.False(t, status.Populated)
	assert.Nil(t, status.Version)

	cache.Store(&Snapshot{
		Version:  version,
		Result:   &LoadResult{Rows: []domain.MetricRow{{AccountID: "a"}}},
		LoadedAt: version.Add(time.Second),
	})

	snapshot, ok := cache.Get(version)
	require.True(t, ok)
	assert.Len(t, snapshot.Result.Rows, 1)

	_, ok = cache.Get(version.Add(time.Nanosecond))
	assert.False(t, ok)

	status = cache.Status()
	assert.True(t, status.Populated)
	assert.Equal(t, 1, status.Rows)
	assert.Equal(t, int64(1), status.Hits)
	assert.Equal(t, int64(2), status.Misses)
	require.NotNil(t, status.LastRefreshAt)
	assert.Equal(t, version.Add(time.Second), *status.LastRefreshAt)

	cache.Invalidate()
	assert.False(t, cache.Status().Populated)
}

func TestSnapshotCache_Concurrent(t *testing.T) {
	cache := NewSnapshotCache()
	version := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Store(&Snapshot{Version: version, Result: emptyResult()})
		}()
		go func() {
			defer wg.Done()
			cache.Get(version)
		}()
	}
	wg.Wait()

	status := cache.Status()
	assert.Equal(t, int64(20), status.Hits+status.Misses)
}
