package models

// LocationCount is a (place, count) pair in a ranking.
type LocationCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyClicks is one bucket of the click time series.
type DailyClicks struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}

// LinkStats is the aggregate view of a link's click events, computed from
// a single snapshot.
type LinkStats struct {
	LinkID          string          `json:"link_id"`
	TotalClicks     int             `json:"total_clicks"`
	DeviceBreakdown map[Device]int  `json:"device_breakdown"`
	TopLocations    []LocationCount `json:"top_locations"`
	TopCountries    []LocationCount `json:"top_countries"`
	TimeSeries      []DailyClicks   `json:"time_series"`
}

// OwnerSummary is the dashboard headline for one owner.
type OwnerSummary struct {
	LinksCreated int `json:"links_created"`
	TotalClicks  int `json:"total_clicks"`
}

// ServiceStats is the service-wide counter set exposed to trusted callers.
type ServiceStats struct {
	Links  int `json:"links"`
	Owners int `json:"owners"`
}
