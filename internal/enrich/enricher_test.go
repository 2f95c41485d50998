package enrich

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/atinyakov/shortlink/internal/models"
)

type locatorFunc func(ctx context.Context, ip net.IP) (Location, error)

func (f locatorFunc) Locate(ctx context.Context, ip net.IP) (Location, error) { return f(ctx, ip) }

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"

func TestEnricher_Enrich(t *testing.T) {
	var calls int
	pune := locatorFunc(func(context.Context, net.IP) (Location, error) {
		calls++
		return Location{City: "Pune", Country: "India"}, nil
	})

	tests := []struct {
		name      string
		locator   Locator
		ip        string
		want      models.Enrichment
		wantCalls int
	}{
		{
			name:      "public ip",
			locator:   pune,
			ip:        "49.36.0.1",
			want:      models.Enrichment{Device: models.DeviceMobile, City: "Pune", Country: "India"},
			wantCalls: 1,
		},
		{
			name:      "host and port",
			locator:   pune,
			ip:        "49.36.0.1:52311",
			want:      models.Enrichment{Device: models.DeviceMobile, City: "Pune", Country: "India"},
			wantCalls: 1,
		},
		{
			name:    "loopback skips lookup",
			locator: pune,
			ip:      "127.0.0.1",
			want:    models.Enrichment{Device: models.DeviceMobile, City: "Unknown", Country: "Unknown"},
		},
		{
			name:    "private skips lookup",
			locator: pune,
			ip:      "10.1.2.3",
			want:    models.Enrichment{Device: models.DeviceMobile, City: "Unknown", Country: "Unknown"},
		},
		{
			name:    "garbage ip",
			locator: pune,
			ip:      "not-an-ip",
			want:    models.Enrichment{Device: models.DeviceMobile, City: "Unknown", Country: "Unknown"},
		},
		{
			name: "no locator",
			ip:   "49.36.0.1",
			want: models.Enrichment{Device: models.DeviceMobile, City: "Unknown", Country: "Unknown"},
		},
		{
			name: "lookup error",
			locator: locatorFunc(func(context.Context, net.IP) (Location, error) {
				return Location{}, errors.New("quota exceeded")
			}),
			ip:   "49.36.0.1",
			want: models.Enrichment{Device: models.DeviceMobile, City: "Unknown", Country: "Unknown"},
		},
		{
			name: "country only",
			locator: locatorFunc(func(context.Context, net.IP) (Location, error) {
				return Location{Country: "India"}, nil
			}),
			ip:   "49.36.0.1",
			want: models.Enrichment{Device: models.DeviceMobile, City: "Unknown", Country: "India"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = 0
			e := New(tt.locator, time.Second, zap.NewNop())

			got := e.Enrich(context.Background(), models.Visit{UserAgent: iphoneUA, SourceIP: tt.ip})

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestEnricher_Timeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	slow := locatorFunc(func(ctx context.Context, _ net.IP) (Location, error) {
		<-release
		return Location{City: "Late", Country: "Late"}, nil
	})
	e := New(slow, 20*time.Millisecond, zap.NewNop())

	start := time.Now()
	got := e.Enrich(context.Background(), models.Visit{SourceIP: "49.36.0.1"})

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, models.Enrichment{Device: models.DeviceUnknown, City: "Unknown", Country: "Unknown"}, got)
}
