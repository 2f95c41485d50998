// Package cache keeps computed link stats for a short time. Entries are
// dropped explicitly when a click for the link is stored or the link is
// deleted. Every drop bumps the link's generation, and a write computed
// under an older generation is discarded.
package cache

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/atinyakov/shortlink/internal/models"
)

const DefaultTTL = 30 * time.Second

type entry struct {
	stats   models.LinkStats
	expires time.Time
}

type Memory struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]entry
	gens  map[string]uint64
	now   func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:   ttl,
		items: make(map[string]entry),
		gens:  make(map[string]uint64),
		now:   time.Now,
	}
}

func (m *Memory) Get(_ context.Context, linkID string) (*models.LinkStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[linkID]
	if !ok {
		return nil, false
	}
	if m.now().After(e.expires) {
		delete(m.items, linkID)
		return nil, false
	}

	stats := clone(&e.stats)
	return &stats, true
}

func (m *Memory) Generation(_ context.Context, linkID string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.gens[linkID]
}

func (m *Memory) Set(_ context.Context, linkID string, gen uint64, stats *models.LinkStats) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.gens[linkID] != gen {
		return
	}
	m.items[linkID] = entry{stats: clone(stats), expires: m.now().Add(m.ttl)}
}

func (m *Memory) Invalidate(_ context.Context, linkID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gens[linkID]++
	delete(m.items, linkID)
}

// clone copies stats so that callers never share maps or slices with a
// cached entry.
func clone(stats *models.LinkStats) models.LinkStats {
	c := *stats
	c.DeviceBreakdown = maps.Clone(stats.DeviceBreakdown)
	c.TopLocations = slices.Clone(stats.TopLocations)
	c.TopCountries = slices.Clone(stats.TopCountries)
	c.TimeSeries = slices.Clone(stats.TimeSeries)
	return c
}
