package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
	"github.com/atinyakov/shortlink/internal/storage"
)

// maxCodeAttempts bounds retries on generated-code collisions.
const maxCodeAttempts = 5

type LinkService struct {
	repository Storage
	codes      *CodeGenerator
	cache      StatsCache
	logger     *zap.Logger
	baseURL    string
}

func NewLinkService(repo Storage, codes *CodeGenerator, cache StatsCache, logger *zap.Logger, baseURL string) *LinkService {
	return &LinkService{
		repository: repo,
		codes:      codes,
		cache:      cache,
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (s *LinkService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}

// Create validates the request and stores a new link with a freshly
// generated short code and the optional custom alias.
func (s *LinkService) Create(ctx context.Context, ownerID string, req models.CreateLinkRequest) (*models.Link, error) {
	original, err := normalizeURL(req.OriginalURL)
	if err != nil {
		return nil, err
	}

	alias := strings.TrimSpace(req.CustomAlias)
	if alias != "" {
		if err := ValidateAlias(alias); err != nil {
			return nil, err
		}
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, err
		}

		link, err := s.repository.CreateLink(ctx, models.Link{
			OwnerID:     ownerID,
			Title:       strings.TrimSpace(req.Title),
			OriginalURL: original,
			ShortCode:   code,
			CustomAlias: alias,
		})
		if err == nil {
			s.logger.Info("link created", zap.String("id", link.ID), zap.String("code", link.Code()))
			return link, nil
		}

		var conflict *storage.ConflictError
		if !errors.As(err, &conflict) {
			return nil, err
		}
		if alias != "" && conflict.Code == alias {
			return nil, ErrAliasTaken
		}

		s.logger.Debug("short code collision", zap.String("code", code), zap.Int("attempt", attempt))
	}

	s.logger.Error("short code space exhausted",
		zap.Int("attempts", maxCodeAttempts),
		zap.Int("code_length", s.codes.Length()),
	)
	return nil, ErrCodeSpaceExhausted
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return raw, nil
}

// Get returns a link owned by ownerID.
func (s *LinkService) Get(ctx context.Context, ownerID, id string) (*models.Link, error) {
	link, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link.OwnerID != ownerID {
		return nil, storage.ErrForbidden
	}
	return link, nil
}

// List returns the owner's links, newest first, keeping those whose title
// contains query (case-insensitive).
func (s *LinkService) List(ctx context.Context, ownerID, query string) ([]models.Link, error) {
	links, err := s.repository.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return links, nil
	}

	filtered := make([]models.Link, 0, len(links))
	for _, l := range links {
		if strings.Contains(strings.ToLower(l.Title), query) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

// Delete removes the link together with its clicks and drops cached stats.
func (s *LinkService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repository.DeleteLink(ctx, id, ownerID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	s.logger.Info("link deleted", zap.String("id", id))
	return nil
}

func (s *LinkService) ShortURL(link models.Link) string {
	return s.baseURL + "/" + link.Code()
}

func (s *LinkService) Response(link models.Link) models.LinkResponse {
	short := s.ShortURL(link)
	return models.LinkResponse{
		Link:       link,
		ShortURL:   short,
		QRImageRef: short,
	}
}

func (s *LinkService) ServiceStats(ctx context.Context) (*models.ServiceStats, error) {
	return s.repository.GetStats(ctx)
}
