package models

import "time"

// Link maps a short code (and optionally a custom alias) to a destination URL.
type Link struct {
	ID          string    `json:"id" format:"uuid"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	OriginalURL string    `json:"original_url"`
	ShortCode   string    `json:"short_code"`
	CustomAlias string    `json:"custom_alias,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Code returns the canonical code of the link. A custom alias takes
// precedence over the generated short code.
func (l *Link) Code() string {
	if l.CustomAlias != "" {
		return l.CustomAlias
	}
	return l.ShortCode
}

// Codes returns every code the link answers to.
func (l *Link) Codes() []string {
	if l.CustomAlias == "" {
		return []string{l.ShortCode}
	}
	return []string{l.ShortCode, l.CustomAlias}
}
