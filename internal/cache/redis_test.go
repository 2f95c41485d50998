package cache

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/atinyakov/shortlink/internal/models"
)

type fakeRedis struct {
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.data[key]
	if !ok {
		return "", errMiss
	}
	return v, nil
}

func (f *fakeRedis) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Del(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.data, key)
	return nil
}

func (f *fakeRedis) Incr(_ context.Context, key string) error {
	if f.err != nil {
		return f.err
	}
	n, _ := strconv.Atoi(f.data[key])
	f.data[key] = strconv.Itoa(n + 1)
	return nil
}

func TestRedis_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	c := NewRedis(client, 0, zap.NewNop())

	stats := &models.LinkStats{
		LinkID:          "link-1",
		TotalClicks:     3,
		DeviceBreakdown: map[models.Device]int{models.DeviceMobile: 2, models.DeviceDesktop: 1},
		TopLocations:    []models.LocationCount{{Name: "Pune", Count: 3}},
	}
	c.Set(ctx, "link-1", c.Generation(ctx, "link-1"), stats)

	assert.Equal(t, DefaultTTL, client.ttls["shortlink:stats:link-1"])

	got, ok := c.Get(ctx, "link-1")
	require.True(t, ok)
	assert.Equal(t, stats, got)

	c.Invalidate(ctx, "link-1")
	_, ok = c.Get(ctx, "link-1")
	assert.False(t, ok)
}

func TestRedis_FailuresAreMisses(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	client := newFakeRedis()
	c := NewRedis(client, time.Minute, zap.New(core))

	client.data["shortlink:stats:bad"] = "{"
	_, ok := c.Get(ctx, "bad")
	assert.False(t, ok)

	client.err = errors.New("connection refused")
	_, ok = c.Get(ctx, "link-1")
	assert.False(t, ok)
	c.Set(ctx, "link-1", 0, &models.LinkStats{})
	c.Invalidate(ctx, "link-1")

	assert.Equal(t, 5, logs.Len())
}

func TestRedis_StaleWriteAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	c := NewRedis(client, time.Minute, zap.NewNop())

	gen := c.Generation(ctx, "link-1")
	c.Invalidate(ctx, "link-1")
	c.Set(ctx, "link-1", gen, &models.LinkStats{LinkID: "link-1", TotalClicks: 7})

	_, ok := c.Get(ctx, "link-1")
	assert.False(t, ok, "stats computed before the invalidate must not be served")

	c.Set(ctx, "link-1", c.Generation(ctx, "link-1"), &models.LinkStats{LinkID: "link-1", TotalClicks: 8})
	got, ok := c.Get(ctx, "link-1")
	require.True(t, ok)
	assert.Equal(t, 8, got.TotalClicks)
}

func TestRedis_EntryFromOlderGenerationIsAMiss(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	c := NewRedis(client, time.Minute, zap.NewNop())

	c.Set(ctx, "link-1", 0, &models.LinkStats{LinkID: "link-1", TotalClicks: 7})
	// a replica bumped the generation but its delete was lost
	client.data["shortlink:stats:gen:link-1"] = "1"

	_, ok := c.Get(ctx, "link-1")
	assert.False(t, ok)
}
