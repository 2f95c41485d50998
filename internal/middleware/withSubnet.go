package middleware

import (
	"net"
	"net/http"
	"strings"
)

// WithSubnet lets a request through only when its X-Real-IP header lies in
// the trusted CIDR. An empty or invalid CIDR denies every request.
func WithSubnet(cidr string) func(next http.Handler) http.Handler {
	_, trusted, err := net.ParseCIDR(strings.TrimSpace(cidr))
	if err != nil {
		trusted = nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !InSubnet(trusted, r.Header.Get("X-Real-IP")) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// InSubnet reports whether raw parses as an IP inside subnet.
func InSubnet(subnet *net.IPNet, raw string) bool {
	if subnet == nil {
		return false
	}
	ip := net.ParseIP(strings.TrimSpace(raw))
	return ip != nil && subnet.Contains(ip)
}
