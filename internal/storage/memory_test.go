package storage_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

func TestMemoryStorage_CreateAndFind(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	link := models.Link{
		OwnerID:     "user1",
		Title:       "Example",
		OriginalURL: "https://example.com",
		ShortCode:   "abc234xy",
	}

	created, err := mem.CreateLink(ctx, link)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// same code again must fail
	_, err = mem.CreateLink(ctx, link)
	assert.ErrorIs(t, err, storage.ErrConflict)

	found, err := mem.FindByCode(ctx, "abc234xy")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", found.OriginalURL)

	_, err = mem.FindByCode(ctx, "notfound")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMemoryStorage_AliasSharesNamespace(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	_, err := mem.CreateLink(ctx, models.Link{OwnerID: "u", ShortCode: "gen23456", CustomAlias: "promo24"})
	require.NoError(t, err)

	byAlias, err := mem.FindByCode(ctx, "promo24")
	require.NoError(t, err)
	byCode, err := mem.FindByCode(ctx, "gen23456")
	require.NoError(t, err)
	assert.Equal(t, byAlias.ID, byCode.ID)

	// an alias may not reuse a generated code
	_, err = mem.CreateLink(ctx, models.Link{OwnerID: "u", ShortCode: "other234", CustomAlias: "gen23456"})
	var ce *storage.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "gen23456", ce.Code)

	// the alias is reported before a colliding generated code
	_, err = mem.CreateLink(ctx, models.Link{OwnerID: "u", ShortCode: "gen23456", CustomAlias: "promo24"})
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "promo24", ce.Code)
}

func TestMemoryStorage_ConcurrentAlias(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := mem.CreateLink(ctx, models.Link{
				OwnerID:     "u",
				ShortCode:   fmt.Sprintf("code%04d", i),
				CustomAlias: "same-alias",
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if errors.Is(err, storage.ErrConflict) {
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
}

func TestMemoryStorage_DeleteLink(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	link, err := mem.CreateLink(ctx, models.Link{OwnerID: "owner", ShortCode: "toDel234", CustomAlias: "my-alias"})
	require.NoError(t, err)
	require.NoError(t, mem.WriteClick(ctx, models.ClickEvent{LinkID: link.ID, OccurredAt: time.Now()}))

	assert.ErrorIs(t, mem.DeleteLink(ctx, link.ID, "intruder"), storage.ErrForbidden)
	require.NoError(t, mem.DeleteLink(ctx, link.ID, "owner"))
	assert.ErrorIs(t, mem.DeleteLink(ctx, link.ID, "owner"), storage.ErrNotFound)

	_, err = mem.FindByCode(ctx, "toDel234")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = mem.FindByCode(ctx, "my-alias")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = mem.ClicksByLink(ctx, link.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// a click arriving after deletion must not be persisted
	err = mem.WriteClick(ctx, models.ClickEvent{LinkID: link.ID, OccurredAt: time.Now()})
	assert.ErrorIs(t, err, storage.ErrNotFound)

	sum, err := mem.OwnerSummary(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, models.OwnerSummary{}, *sum)
}

func TestMemoryStorage_ClicksByLinkChronological(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	link, err := mem.CreateLink(ctx, models.Link{OwnerID: "u", ShortCode: "chrono23"})
	require.NoError(t, err)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, offset := range []int{3, 1, 2} {
		require.NoError(t, mem.WriteClick(ctx, models.ClickEvent{
			LinkID:     link.ID,
			OccurredAt: base.Add(time.Duration(offset) * time.Hour),
		}))
	}

	events, err := mem.ClicksByLink(ctx, link.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.True(t, events[0].OccurredAt.Before(events[1].OccurredAt))
	assert.True(t, events[1].OccurredAt.Before(events[2].OccurredAt))
	for _, e := range events {
		assert.NotEmpty(t, e.ID)
	}
}

func TestMemoryStorage_FindByOwnerAndSummary(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()
	ctx := context.Background()

	a, _ := mem.CreateLink(ctx, models.Link{OwnerID: "userX", ShortCode: "s1aaaaaa"})
	_, _ = mem.CreateLink(ctx, models.Link{OwnerID: "userX", ShortCode: "s2aaaaaa"})
	_, _ = mem.CreateLink(ctx, models.Link{OwnerID: "userY", ShortCode: "s3aaaaaa"})
	_ = mem.WriteClick(ctx, models.ClickEvent{LinkID: a.ID})
	_ = mem.WriteClick(ctx, models.ClickEvent{LinkID: a.ID})

	links, err := mem.FindByOwner(ctx, "userX")
	require.NoError(t, err)
	assert.Len(t, links, 2)

	links, err = mem.FindByOwner(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, links)

	sum, err := mem.OwnerSummary(ctx, "userX")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.LinksCreated)
	assert.Equal(t, 2, sum.TotalClicks)

	stats, err := mem.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Links)
	assert.Equal(t, 2, stats.Owners)
}

func TestMemoryStorage_PingContext(t *testing.T) {
	mem, _ := storage.CreateMemoryStorage()

	err := mem.PingContext(context.Background())
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
