package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
)

func TestFileStorage_ReplayRestoresState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "links.json")

	fs, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)

	kept, err := fs.CreateLink(ctx, models.Link{OwnerID: "u1", OriginalURL: "https://a.com", ShortCode: "keep2345", CustomAlias: "kept-alias"})
	require.NoError(t, err)
	gone, err := fs.CreateLink(ctx, models.Link{OwnerID: "u1", OriginalURL: "https://b.com", ShortCode: "gone2345"})
	require.NoError(t, err)

	require.NoError(t, fs.WriteClick(ctx, models.ClickEvent{LinkID: kept.ID, OccurredAt: time.Now(), Device: models.DeviceMobile}))
	require.NoError(t, fs.WriteClick(ctx, models.ClickEvent{LinkID: gone.ID, OccurredAt: time.Now()}))
	require.NoError(t, fs.DeleteLink(ctx, gone.ID, "u1"))
	require.NoError(t, fs.Close())

	reopened, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	found, err := reopened.FindByCode(ctx, "kept-alias")
	require.NoError(t, err)
	assert.Equal(t, "https://a.com", found.OriginalURL)

	_, err = reopened.FindByCode(ctx, "gone2345")
	assert.ErrorIs(t, err, ErrNotFound)

	events, err := reopened.ClicksByLink(ctx, kept.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.DeviceMobile, events[0].Device)
}

func TestFileStorage_RejectsWithoutJournaling(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "links.json")

	fs, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer fs.Close()

	_, err = fs.CreateLink(ctx, models.Link{OwnerID: "u1", ShortCode: "dup23456"})
	require.NoError(t, err)

	_, err = fs.CreateLink(ctx, models.Link{OwnerID: "u2", ShortCode: "dup23456"})
	assert.ErrorIs(t, err, ErrConflict)

	assert.ErrorIs(t, fs.WriteClick(ctx, models.ClickEvent{LinkID: "missing"}), ErrNotFound)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := 0
	for _, c := range b {
		if c == '\n' {
			lines++
		}
	}
	assert.Equal(t, 1, lines)
}

func TestFileStorage_DeleteForbidden(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStorage(filepath.Join(t.TempDir(), "links.json"), zap.NewNop())
	require.NoError(t, err)
	defer fs.Close()

	link, err := fs.CreateLink(ctx, models.Link{OwnerID: "owner", ShortCode: "mine2345"})
	require.NoError(t, err)

	assert.ErrorIs(t, fs.DeleteLink(ctx, link.ID, "other"), ErrForbidden)
	assert.ErrorIs(t, fs.DeleteLink(ctx, "nope", "owner"), ErrNotFound)
}

func TestFileStorage_Ping(t *testing.T) {
	fs, err := NewFileStorage(filepath.Join(t.TempDir(), "ping.json"), zap.NewNop())
	require.NoError(t, err)

	assert.NoError(t, fs.PingContext(context.Background()))
	require.NoError(t, fs.Close())
	assert.Error(t, fs.PingContext(context.Background()))
}

func TestFileStorage_CorruptLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json}\n"), 0660))

	_, err := NewFileStorage(path, zap.NewNop())
	assert.Error(t, err)
}
