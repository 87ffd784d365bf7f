package httpx

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller's address: the first X-Forwarded-For entry when
// present, otherwise RemoteAddr with any port removed.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
