package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atinyakov/shortlink/internal/app/service"
	"github.com/atinyakov/shortlink/internal/cache"
	"github.com/atinyakov/shortlink/internal/logger"
	"github.com/atinyakov/shortlink/internal/middleware"
	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

type discardQueue struct{}

func (discardQueue) Enqueue(models.ClickJob) bool { return true }

func benchServices(b *testing.B) (*service.LinkService, *service.Resolver, *service.StatsAggregator) {
	b.Helper()
	store, _ := storage.CreateMemoryStorage()
	zapLogger := logger.New().Log
	statsCache := cache.NewMemory(0)

	links := service.NewLinkService(store, service.NewCodeGenerator(service.DefaultCodeLength), statsCache, zapLogger, "http://localhost:8080")
	resolver := service.NewResolver(store, service.NewClickRecorder(discardQueue{}))
	stats := service.NewStatsAggregator(store, statsCache, zapLogger)
	return links, resolver, stats
}

func BenchmarkCreateLink(b *testing.B) {
	links, _, _ := benchServices(b)
	h := NewPost(links, logger.New().Log)
	body := []byte(`{"title":"bench","original_url":"https://example.com/some/long/path"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/links", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = middleware.InjectUserID(req, "bench-user")
		h.CreateLink(httptest.NewRecorder(), req)
	}
}

func BenchmarkByCode(b *testing.B) {
	links, resolver, stats := benchServices(b)
	h := NewGet(resolver, links, stats, logger.New().Log)

	link, err := links.Create(context.Background(), "bench-user", models.CreateLinkRequest{OriginalURL: "https://example.com", CustomAlias: "bench-alias"})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/"+link.Code(), nil)
		req = withURLParam(req, "code", link.Code())
		h.ByCode(httptest.NewRecorder(), req)
	}
}
