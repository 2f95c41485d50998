package service

import (
	"context"

	"github.com/atinyakov/shortlink/internal/models"
)

type LinkStore interface {
	CreateLink(context.Context, models.Link) (*models.Link, error)
	FindByCode(context.Context, string) (*models.Link, error)
	FindByID(context.Context, string) (*models.Link, error)
	FindByOwner(context.Context, string) ([]models.Link, error)
	DeleteLink(ctx context.Context, id, ownerID string) error
}

type ClickStore interface {
	WriteClick(context.Context, models.ClickEvent) error
	ClicksByLink(context.Context, string) ([]models.ClickEvent, error)
	OwnerSummary(context.Context, string) (*models.OwnerSummary, error)
}

// Storage is implemented by storage.MemoryStorage, storage.FileStorage and
// repository.LinkRepository.
type Storage interface {
	LinkStore
	ClickStore
	GetStats(context.Context) (*models.ServiceStats, error)
	PingContext(context.Context) error
}

// ClickQueue accepts click jobs without blocking.
type ClickQueue interface {
	Enqueue(models.ClickJob) bool
}

// StatsCache holds uncut stats per link. Set drops stats computed under a
// generation that an Invalidate has since moved past.
type StatsCache interface {
	Get(ctx context.Context, linkID string) (*models.LinkStats, bool)
	Generation(ctx context.Context, linkID string) uint64
	Set(ctx context.Context, linkID string, gen uint64, stats *models.LinkStats)
	Invalidate(ctx context.Context, linkID string)
}

// LinkServiceIface is what the transports need from LinkService.
type LinkServiceIface interface {
	Create(ctx context.Context, ownerID string, req models.CreateLinkRequest) (*models.Link, error)
	Get(ctx context.Context, ownerID, id string) (*models.Link, error)
	List(ctx context.Context, ownerID, query string) ([]models.Link, error)
	Delete(ctx context.Context, ownerID, id string) error
	Response(link models.Link) models.LinkResponse
	ServiceStats(ctx context.Context) (*models.ServiceStats, error)
	PingContext(ctx context.Context) error
}

type ResolverIface interface {
	Resolve(ctx context.Context, code string) (string, error)
	Follow(ctx context.Context, code string, visit models.Visit) (string, error)
}

type StatsIface interface {
	LinkStats(ctx context.Context, linkID string, limit int) (*models.LinkStats, error)
	OwnerSummary(ctx context.Context, ownerID string) (*models.OwnerSummary, error)
}
