package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atinyakov/shortlink/internal/models"
)

// MemoryStorage keeps links and click events in maps guarded by a single
// mutex. Every code of every link lives in one namespace.
type MemoryStorage struct {
	mu     sync.RWMutex
	links  map[string]models.Link         // id -> link
	codes  map[string]string              // short code or alias -> link id
	clicks map[string][]models.ClickEvent // link id -> events
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		links:  make(map[string]models.Link),
		codes:  make(map[string]string),
		clicks: make(map[string][]models.ClickEvent),
	}, nil
}

// CreateLink checks the namespace and inserts the link in one critical section.
func (m *MemoryStorage) CreateLink(_ context.Context, link models.Link) (*models.Link, error) {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.conflictLocked(link); err != nil {
		return nil, err
	}

	m.links[link.ID] = link
	for _, c := range link.Codes() {
		m.codes[c] = link.ID
	}

	return &link, nil
}

func (m *MemoryStorage) conflict(link models.Link) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.conflictLocked(link)
}

func (m *MemoryStorage) conflictLocked(link models.Link) error {
	if _, exists := m.links[link.ID]; exists {
		return &ConflictError{Code: link.ID}
	}
	// the alias is checked first so the caller learns about it even if the
	// generated code collided too
	codes := link.Codes()
	for i := len(codes) - 1; i >= 0; i-- {
		if _, taken := m.codes[codes[i]]; taken {
			return &ConflictError{Code: codes[i]}
		}
	}
	if link.CustomAlias != "" && link.CustomAlias == link.ShortCode {
		return &ConflictError{Code: link.CustomAlias}
	}
	return nil
}

func (m *MemoryStorage) FindByCode(_ context.Context, code string) (*models.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.codes[code]
	if !ok {
		return nil, ErrNotFound
	}
	link := m.links[id]
	return &link, nil
}

func (m *MemoryStorage) FindByID(_ context.Context, id string) (*models.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, ok := m.links[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &link, nil
}

// FindByOwner returns the owner's links, newest first.
func (m *MemoryStorage) FindByOwner(_ context.Context, ownerID string) ([]models.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var res []models.Link
	for _, l := range m.links {
		if l.OwnerID == ownerID {
			res = append(res, l)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID < res[j].ID
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})

	return res, nil
}

// DeleteLink removes the link, its codes and its click events.
func (m *MemoryStorage) DeleteLink(_ context.Context, id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, ok := m.links[id]
	if !ok {
		return ErrNotFound
	}
	if link.OwnerID != ownerID {
		return ErrForbidden
	}

	for _, c := range link.Codes() {
		delete(m.codes, c)
	}
	delete(m.clicks, id)
	delete(m.links, id)

	return nil
}

// WriteClick appends a click event. Events for unknown links are rejected
// so no event outlives its link.
func (m *MemoryStorage) WriteClick(_ context.Context, click models.ClickEvent) error {
	if click.ID == "" {
		click.ID = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.links[click.LinkID]; !ok {
		return ErrNotFound
	}
	m.clicks[click.LinkID] = append(m.clicks[click.LinkID], click)

	return nil
}

// ClicksByLink returns a copy of the link's events in chronological order.
func (m *MemoryStorage) ClicksByLink(_ context.Context, linkID string) ([]models.ClickEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.links[linkID]; !ok {
		return nil, ErrNotFound
	}

	events := make([]models.ClickEvent, len(m.clicks[linkID]))
	copy(events, m.clicks[linkID])

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].OccurredAt.Before(events[j].OccurredAt)
	})

	return events, nil
}

func (m *MemoryStorage) OwnerSummary(_ context.Context, ownerID string) (*models.OwnerSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var sum models.OwnerSummary
	for id, l := range m.links {
		if l.OwnerID != ownerID {
			continue
		}
		sum.LinksCreated++
		sum.TotalClicks += len(m.clicks[id])
	}

	return &sum, nil
}

func (m *MemoryStorage) GetStats(_ context.Context) (*models.ServiceStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owners := make(map[string]struct{})
	for _, l := range m.links {
		owners[l.OwnerID] = struct{}{}
	}

	return &models.ServiceStats{Links: len(m.links), Owners: len(owners)}, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return errors.ErrUnsupported
}
