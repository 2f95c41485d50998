package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/oschwald/geoip2-golang"
)

var errUnavailable = errors.New("enrichment unavailable")

// Location is a best-effort place for an IP address.
type Location struct {
	City    string
	Country string
}

type Locator interface {
	Locate(ctx context.Context, ip net.IP) (Location, error)
}

type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

// MaxMindLocator answers from a local GeoLite2/GeoIP2 City database.
type MaxMindLocator struct {
	reader cityReader
}

func OpenMaxMind(path string) (*MaxMindLocator, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &MaxMindLocator{reader: reader}, nil
}

func (l *MaxMindLocator) Locate(_ context.Context, ip net.IP) (Location, error) {
	record, err := l.reader.City(ip)
	if err != nil {
		return Location{}, err
	}

	loc := Location{
		City:    record.City.Names["en"],
		Country: record.Country.Names["en"],
	}
	if loc.Country == "" {
		loc.Country = record.Country.IsoCode
	}
	if loc.City == "" && loc.Country == "" {
		return Location{}, errUnavailable
	}
	return loc, nil
}

func (l *MaxMindLocator) Close() error {
	return l.reader.Close()
}

// HTTPLocator queries an ipapi.co compatible endpoint: GET {base}/{ip}/json/.
type HTTPLocator struct {
	base   string
	client *http.Client
}

func NewHTTPLocator(base string) *HTTPLocator {
	return &HTTPLocator{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

type ipapiResponse struct {
	City        string `json:"city"`
	CountryName string `json:"country_name"`
	Error       bool   `json:"error"`
	Reason      string `json:"reason"`
}

func (l *HTTPLocator) Locate(ctx context.Context, ip net.IP) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.base+"/"+ip.String()+"/json/", nil)
	if err != nil {
		return Location{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geo lookup: unexpected status %d", resp.StatusCode)
	}

	var body ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Location{}, fmt.Errorf("geo lookup: %w", err)
	}
	if body.Error {
		return Location{}, fmt.Errorf("geo lookup: %s", body.Reason)
	}

	return Location{City: body.City, Country: body.CountryName}, nil
}
