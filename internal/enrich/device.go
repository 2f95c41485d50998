// Package enrich derives device class and location for a click. Every
// failure degrades to "unknown" values; no error leaves the package.
package enrich

import (
	"strings"

	"github.com/mssola/user_agent"

	"github.com/atinyakov/shortlink/internal/models"
)

// botHints match crawlers and bare HTTP client libraries.
var botHints = []string{
	"bot", "crawler", "spider", "slurp", "headless",
	"curl", "wget", "python-requests", "okhttp", "java/", "go-http-client", "apache-httpclient",
}

// ClassifyDevice maps a raw user agent onto a device class.
func ClassifyDevice(raw string) models.Device {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DeviceUnknown
	}

	lower := strings.ToLower(raw)
	for _, hint := range botHints {
		if strings.Contains(lower, hint) {
			return models.DeviceBot
		}
	}

	ua := user_agent.New(raw)

	switch {
	case strings.Contains(lower, "ipad"), strings.Contains(lower, "tablet"):
		return models.DeviceTablet
	case strings.Contains(lower, "android") && !strings.Contains(raw, "Mobi"):
		// Android without the Mobile token is a tablet
		return models.DeviceTablet
	case ua.Mobile(), strings.Contains(raw, "Mobi"):
		return models.DeviceMobile
	case ua.OS() != "":
		return models.DeviceDesktop
	}

	return models.DeviceUnknown
}
