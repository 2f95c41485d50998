package service

import (
	"context"
	"maps"
	"slices"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
)

const (
	DefaultTopLimit = 5
	MaxTopLimit     = 100

	dayLayout = "2006-01-02"
)

// StatsAggregator answers analytics queries from the persisted click
// events. Every figure in one answer comes from the same snapshot.
type StatsAggregator struct {
	store  ClickStore
	cache  StatsCache
	logger *zap.Logger
}

func NewStatsAggregator(store ClickStore, cache StatsCache, logger *zap.Logger) *StatsAggregator {
	return &StatsAggregator{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func (a *StatsAggregator) TotalClicks(ctx context.Context, linkID string) (int, error) {
	stats, err := a.snapshot(ctx, linkID)
	if err != nil {
		return 0, err
	}
	return stats.TotalClicks, nil
}

func (a *StatsAggregator) DeviceBreakdown(ctx context.Context, linkID string) (map[models.Device]int, error) {
	stats, err := a.snapshot(ctx, linkID)
	if err != nil {
		return nil, err
	}
	return maps.Clone(stats.DeviceBreakdown), nil
}

// TopLocations ranks cities by clicks, ties broken by city name.
func (a *StatsAggregator) TopLocations(ctx context.Context, linkID string, limit int) ([]models.LocationCount, error) {
	stats, err := a.snapshot(ctx, linkID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(top(stats.TopLocations, limit)), nil
}

func (a *StatsAggregator) OwnerSummary(ctx context.Context, ownerID string) (*models.OwnerSummary, error) {
	return a.store.OwnerSummary(ctx, ownerID)
}

// LinkStats returns the full analytics view with rankings cut to limit.
func (a *StatsAggregator) LinkStats(ctx context.Context, linkID string, limit int) (*models.LinkStats, error) {
	stats, err := a.snapshot(ctx, linkID)
	if err != nil {
		return nil, err
	}

	res := *stats
	res.DeviceBreakdown = maps.Clone(stats.DeviceBreakdown)
	res.TopLocations = slices.Clone(top(stats.TopLocations, limit))
	res.TopCountries = slices.Clone(top(stats.TopCountries, limit))
	res.TimeSeries = slices.Clone(stats.TimeSeries)
	return &res, nil
}

// snapshot returns uncut stats for the link, from cache when possible. The
// generation is read before the clicks so that a delete or click landing in
// between keeps the result out of the cache.
func (a *StatsAggregator) snapshot(ctx context.Context, linkID string) (*models.LinkStats, error) {
	if cached, ok := a.cache.Get(ctx, linkID); ok {
		return cached, nil
	}

	gen := a.cache.Generation(ctx, linkID)
	events, err := a.store.ClicksByLink(ctx, linkID)
	if err != nil {
		return nil, err
	}

	stats := Aggregate(linkID, events)
	a.cache.Set(ctx, linkID, gen, stats)
	a.logger.Debug("stats computed", zap.String("link_id", linkID), zap.Int("clicks", stats.TotalClicks))

	return stats, nil
}

// Aggregate folds click events into stats. Rankings are complete; callers
// cut them.
func Aggregate(linkID string, events []models.ClickEvent) *models.LinkStats {
	stats := &models.LinkStats{
		LinkID:          linkID,
		TotalClicks:     len(events),
		DeviceBreakdown: make(map[models.Device]int),
		TopLocations:    []models.LocationCount{},
		TopCountries:    []models.LocationCount{},
		TimeSeries:      []models.DailyClicks{},
	}
	if len(events) == 0 {
		return stats
	}

	cities := make(map[string]int)
	countries := make(map[string]int)
	days := make(map[string]int)
	var first, last time.Time

	for i, e := range events {
		device := e.Device
		if device == "" {
			device = models.DeviceUnknown
		}
		stats.DeviceBreakdown[device]++
		cities[placeOrUnknown(e.City)]++
		countries[placeOrUnknown(e.Country)]++

		day := e.OccurredAt.UTC().Truncate(24 * time.Hour)
		days[day.Format(dayLayout)]++
		if i == 0 || day.Before(first) {
			first = day
		}
		if i == 0 || day.After(last) {
			last = day
		}
	}

	stats.TopLocations = rank(cities)
	stats.TopCountries = rank(countries)

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		stats.TimeSeries = append(stats.TimeSeries, models.DailyClicks{Date: key, Count: days[key]})
	}

	return stats
}

func placeOrUnknown(s string) string {
	if s == "" {
		return models.UnknownPlace
	}
	return s
}

func rank(counts map[string]int) []models.LocationCount {
	res := make([]models.LocationCount, 0, len(counts))
	for name, n := range counts {
		res = append(res, models.LocationCount{Name: name, Count: n})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Name < res[j].Name
	})
	return res
}

func top(items []models.LocationCount, limit int) []models.LocationCount {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
