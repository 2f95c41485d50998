package main

import "net/url"

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// hostOf returns the host part of the base URL, used as the autocert
// whitelist entry.
func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return "localhost"
	}
	return u.Hostname()
}
