package reporting

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/metrics"
)

// Snapshot é o conteúdo completo da fonte (sem filtro de datas) para uma versão do arquivo
type Snapshot struct {
	Version  time.Time
	Result   *LoadResult
	LoadedAt time.Time
}

// SnapshotCache guarda um único snapshot, invalidado quando a data de modificação da fonte muda.
// Muitos leitores, um escritor por vez.
type SnapshotCache struct {
	mu       sync.RWMutex
	snapshot *Snapshot

	hits   atomic.Int64
	misses atomic.Int64
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

// Get retorna o snapshot somente se ele foi gerado para a mesma versão
func (c *SnapshotCache) Get(version time.Time) (*Snapshot, bool) {
	c.mu.RLock()
	snapshot := c.snapshot
	c.mu.RUnlock()

	if snapshot == nil || !snapshot.Version.Equal(version) {
		c.misses.Add(1)
		metrics.CacheMiss()
		return nil, false
	}

	c.hits.Add(1)
	metrics.CacheHit()
	return snapshot, true
}

func (c *SnapshotCache) Store(snapshot *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = snapshot
}

func (c *SnapshotCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
}

func (c *SnapshotCache) Status() domain.CacheStatus {
	c.mu.RLock()
	snapshot := c.snapshot
	c.mu.RUnlock()

	status := domain.CacheStatus{
		Enabled: true,
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}

	if snapshot != nil {
		version := snapshot.Version
		loadedAt := snapshot.LoadedAt
		status.Populated = true
		status.Version = &version
		status.LastRefreshAt = &loadedAt
		status.Rows = len(snapshot.Result.Rows)
	}

	return status
}
