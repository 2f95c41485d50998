package models

import "time"

// Device is the coarse device class derived from a user agent.
type Device string

const (
	DeviceMobile  Device = "mobile"
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
	DeviceBot     Device = "bot"
	DeviceUnknown Device = "unknown"
)

// UnknownPlace is stored when a city or country cannot be derived.
const UnknownPlace = "Unknown"

// Devices lists every device class in a stable order.
var Devices = []Device{DeviceMobile, DeviceDesktop, DeviceTablet, DeviceBot, DeviceUnknown}

// ClickEvent is one recorded visit through a short code. It is never
// mutated after it is written.
type ClickEvent struct {
	ID           string    `json:"id"`
	LinkID       string    `json:"link_id"`
	OccurredAt   time.Time `json:"occurred_at"`
	RawUserAgent string    `json:"raw_user_agent"`
	Device       Device    `json:"device"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
}

// Visit carries the request facts captured on the redirect path.
type Visit struct {
	UserAgent  string    `json:"user_agent"`
	SourceIP   string    `json:"source_ip"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ClickJob is a unit of work for the click recorder. SourceIP is only used
// for enrichment and never persisted.
type ClickJob struct {
	LinkID string `json:"link_id"`
	Code   string `json:"code"`
	Visit
}

// Enrichment is the best-effort metadata derived from a visit.
type Enrichment struct {
	Device  Device
	City    string
	Country string
}
