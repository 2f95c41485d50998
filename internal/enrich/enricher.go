package enrich

import (
	"context"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
)

const DefaultTimeout = time.Second

type Enricher struct {
	locator Locator
	timeout time.Duration
	logger  *zap.Logger
}

// New builds an Enricher. A nil locator turns geo lookups off.
func New(locator Locator, timeout time.Duration, logger *zap.Logger) *Enricher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Enricher{
		locator: locator,
		timeout: timeout,
		logger:  logger,
	}
}

func (e *Enricher) Enrich(ctx context.Context, v models.Visit) models.Enrichment {
	out := models.Enrichment{
		Device:  ClassifyDevice(v.UserAgent),
		City:    models.UnknownPlace,
		Country: models.UnknownPlace,
	}

	loc, err := e.locate(ctx, v.SourceIP)
	if err != nil {
		e.logger.Debug("location unavailable", zap.String("ip", v.SourceIP), zap.Error(err))
		return out
	}

	if loc.City != "" {
		out.City = loc.City
	}
	if loc.Country != "" {
		out.Country = loc.Country
	}
	return out
}

func (e *Enricher) locate(ctx context.Context, raw string) (Location, error) {
	if e.locator == nil {
		return Location{}, errUnavailable
	}

	ip := parseIP(raw)
	if !isPublic(ip) {
		return Location{}, errUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		loc Location
		err error
	}
	ch := make(chan result, 1)

	go func() {
		loc, err := e.locator.Locate(ctx, ip)
		ch <- result{loc, err}
	}()

	select {
	case r := <-ch:
		return r.loc, r.err
	case <-ctx.Done():
		return Location{}, ctx.Err()
	}
}

// parseIP accepts a bare address or host:port.
func parseIP(raw string) net.IP {
	raw = strings.TrimSpace(raw)
	if host, _, err := net.SplitHostPort(raw); err == nil {
		raw = host
	}
	return net.ParseIP(raw)
}

func isPublic(ip net.IP) bool {
	return ip != nil &&
		!ip.IsLoopback() &&
		!ip.IsPrivate() &&
		!ip.IsUnspecified() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsMulticast()
}
