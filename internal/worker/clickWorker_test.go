package worker_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
	"github.com/atinyakov/shortlink/internal/worker"
)

type MockRepo struct {
	mu     sync.Mutex
	Clicks []models.ClickEvent
	Calls  int
	// FailFirst makes the first n writes fail.
	FailFirst int
	Err       error
	block     chan struct{}
}

func (m *MockRepo) WriteClick(_ context.Context, c models.ClickEvent) error {
	if m.block != nil {
		<-m.block
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	if m.Err != nil {
		return m.Err
	}
	if m.Calls <= m.FailFirst {
		return errors.New("forced failure")
	}
	m.Clicks = append(m.Clicks, c)
	return nil
}

func (m *MockRepo) snapshot() ([]models.ClickEvent, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ClickEvent(nil), m.Clicks...), m.Calls
}

type staticEnricher struct{}

func (staticEnricher) Enrich(_ context.Context, _ models.Visit) models.Enrichment {
	return models.Enrichment{Device: models.DeviceMobile, City: "Pune", Country: "India"}
}

type countingCache struct {
	invalidated atomic.Int32
}

func (c *countingCache) Invalidate(_ context.Context, _ string) {
	c.invalidated.Add(1)
}

func job(linkID string) models.ClickJob {
	return models.ClickJob{
		LinkID: linkID,
		Code:   "promo24",
		Visit: models.Visit{
			UserAgent:  "Mozilla/5.0 (iPhone)",
			SourceIP:   "203.0.113.7",
			OccurredAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func TestClickWorker_PersistsEnrichedClick(t *testing.T) {
	repo := &MockRepo{}
	cache := &countingCache{}

	w := worker.NewClickWorker(zap.NewNop(), repo, staticEnricher{}, cache, worker.Options{Workers: 2})
	w.Start()

	for i := 0; i < 10; i++ {
		require.True(t, w.Enqueue(job("link-1")))
	}
	require.NoError(t, w.Shutdown(context.Background()))

	clicks, _ := repo.snapshot()
	require.Len(t, clicks, 10)
	assert.Equal(t, "link-1", clicks[0].LinkID)
	assert.Equal(t, models.DeviceMobile, clicks[0].Device)
	assert.Equal(t, "Pune", clicks[0].City)
	assert.Equal(t, "Mozilla/5.0 (iPhone)", clicks[0].RawUserAgent)
	assert.Equal(t, int32(10), cache.invalidated.Load())
}

func TestClickWorker_RetriesThenSucceeds(t *testing.T) {
	repo := &MockRepo{FailFirst: 2}

	w := worker.NewClickWorker(zap.NewNop(), repo, staticEnricher{}, &countingCache{},
		worker.Options{Workers: 1, Retries: 2, Backoff: time.Millisecond})
	w.Start()

	w.Enqueue(job("link-1"))
	require.NoError(t, w.Shutdown(context.Background()))

	clicks, calls := repo.snapshot()
	assert.Len(t, clicks, 1)
	assert.Equal(t, 3, calls)
}

func TestClickWorker_GivesUpAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	repo := &MockRepo{Err: errors.New("db down")}
	cache := &countingCache{}

	w := worker.NewClickWorker(zap.New(core), repo, staticEnricher{}, cache,
		worker.Options{Workers: 1, Retries: 2, Backoff: time.Millisecond})
	w.Start()

	w.Enqueue(job("link-1"))
	require.NoError(t, w.Shutdown(context.Background()))

	_, calls := repo.snapshot()
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, logs.FilterMessage("cannot persist click").Len())
	assert.Zero(t, cache.invalidated.Load())
}

func TestClickWorker_DeletedLinkIsNotRetried(t *testing.T) {
	repo := &MockRepo{Err: storage.ErrNotFound}

	w := worker.NewClickWorker(zap.NewNop(), repo, staticEnricher{}, &countingCache{},
		worker.Options{Workers: 1, Retries: 2, Backoff: time.Millisecond})
	w.Start()

	w.Enqueue(job("gone"))
	require.NoError(t, w.Shutdown(context.Background()))

	_, calls := repo.snapshot()
	assert.Equal(t, 1, calls)
}

func TestClickWorker_DropsWhenFull(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := &MockRepo{block: make(chan struct{})}

	w := worker.NewClickWorker(zap.New(core), repo, staticEnricher{}, &countingCache{},
		worker.Options{Workers: 1, QueueSize: 1})

	// not started: the single slot fills and the next job is dropped
	assert.True(t, w.Enqueue(job("link-1")))
	assert.False(t, w.Enqueue(job("link-1")))
	assert.Equal(t, 1, logs.FilterMessage("click dropped, queue full").Len())

	close(repo.block)
	w.Start()
	require.NoError(t, w.Shutdown(context.Background()))

	clicks, _ := repo.snapshot()
	assert.Len(t, clicks, 1)
}

func TestClickWorker_EnqueueAfterShutdown(t *testing.T) {
	w := worker.NewClickWorker(zap.NewNop(), &MockRepo{}, staticEnricher{}, &countingCache{}, worker.Options{})
	w.Start()
	require.NoError(t, w.Shutdown(context.Background()))

	assert.False(t, w.Enqueue(job("link-1")))
	// second shutdown is harmless
	assert.NoError(t, w.Shutdown(context.Background()))
}

func TestClickWorker_ShutdownHonoursContext(t *testing.T) {
	repo := &MockRepo{block: make(chan struct{})}
	defer close(repo.block)

	w := worker.NewClickWorker(zap.NewNop(), repo, staticEnricher{}, &countingCache{}, worker.Options{Workers: 1})
	w.Start()
	w.Enqueue(job("link-1"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, w.Shutdown(ctx), context.DeadlineExceeded)
}
