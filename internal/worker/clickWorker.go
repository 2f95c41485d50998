// Package worker persists click jobs in the background.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

type ClickWriter interface {
	WriteClick(context.Context, models.ClickEvent) error
}

type Enricher interface {
	Enrich(context.Context, models.Visit) models.Enrichment
}

// Invalidator drops cached stats for a link once a click for it is stored.
type Invalidator interface {
	Invalidate(ctx context.Context, linkID string)
}

type Options struct {
	Workers   int
	QueueSize int
	Retries   int
	Backoff   time.Duration
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = 4
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 1024
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	if o.Backoff <= 0 {
		o.Backoff = 50 * time.Millisecond
	}
	return o
}

// ClickWorker is a fixed pool of goroutines fed by a buffered channel.
type ClickWorker struct {
	in       chan models.ClickJob
	logger   *zap.Logger
	repo     ClickWriter
	enricher Enricher
	cache    Invalidator
	opts     Options

	mu     sync.RWMutex // guards closed against sends on a closed channel
	closed bool
	wg     sync.WaitGroup
}

func NewClickWorker(logger *zap.Logger, repo ClickWriter, enricher Enricher, cache Invalidator, opts Options) *ClickWorker {
	opts = opts.withDefaults()

	return &ClickWorker{
		in:       make(chan models.ClickJob, opts.QueueSize),
		logger:   logger,
		repo:     repo,
		enricher: enricher,
		cache:    cache,
		opts:     opts,
	}
}

func (w *ClickWorker) Start() {
	w.logger.Info("starting click workers", zap.Int("workers", w.opts.Workers), zap.Int("queue", w.opts.QueueSize))

	for i := 0; i < w.opts.Workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for job := range w.in {
				w.process(job)
			}
		}()
	}
}

// Enqueue hands the job to the pool without blocking. It reports false when
// the job was dropped because the queue is full or the pool is stopped.
func (w *ClickWorker) Enqueue(job models.ClickJob) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.logger.Warn("click dropped, worker stopped", zap.String("link_id", job.LinkID))
		return false
	}

	select {
	case w.in <- job:
		return true
	default:
		w.logger.Warn("click dropped, queue full", zap.String("link_id", job.LinkID))
		return false
	}
}

// Shutdown stops accepting jobs and waits until the queued ones are
// persisted or ctx expires.
func (w *ClickWorker) Shutdown(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.in)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("click workers drained")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *ClickWorker) process(job models.ClickJob) {
	enrichment := w.enricher.Enrich(context.Background(), job.Visit)

	click := models.ClickEvent{
		LinkID:       job.LinkID,
		OccurredAt:   job.OccurredAt.UTC(),
		RawUserAgent: job.UserAgent,
		Device:       enrichment.Device,
		City:         enrichment.City,
		Country:      enrichment.Country,
	}
	if click.OccurredAt.IsZero() {
		click.OccurredAt = time.Now().UTC()
	}

	var err error
	for attempt := 0; attempt <= w.opts.Retries; attempt++ {
		if attempt > 0 {
			time.Sleep(w.opts.Backoff * time.Duration(attempt))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err = w.repo.WriteClick(ctx, click)
		cancel()

		if err == nil || errors.Is(err, storage.ErrNotFound) {
			break
		}
	}

	switch {
	case err == nil:
		w.cache.Invalidate(context.Background(), job.LinkID)
	case errors.Is(err, storage.ErrNotFound):
		w.logger.Info("click for deleted link discarded", zap.String("link_id", job.LinkID))
	default:
		w.logger.Error("cannot persist click", zap.String("link_id", job.LinkID), zap.Error(err))
	}
}
