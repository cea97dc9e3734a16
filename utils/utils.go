package utils

import (
	"net"
	"net/http"
	"reflect"
	"regexp"
	"strings"
)

func DefaultIfZero[T any](v T, fallback T) T {
	if reflect.ValueOf(v).IsZero() {
		return fallback
	}
	return v
}

func Pointer[T any](v T) *T {
	return &v
}

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ClientIP returns the best-effort client origin: the first X-Forwarded-For
// hop when present, else the remote address host, else "unknown".
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if hop := strings.TrimSpace(strings.Split(xff, ",")[0]); hop != "" {
			return hop
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
