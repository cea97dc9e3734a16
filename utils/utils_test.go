package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIfZero(t *testing.T) {
	assert.Equal(t, "fallback", DefaultIfZero("", "fallback"))
	assert.Equal(t, "value", DefaultIfZero("value", "fallback"))
	assert.Equal(t, 10, DefaultIfZero(0, 10))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.co", true},
		{"no-at-sign", false},
		{"spaces in@example.com", false},
		{"missing@tld", false},
		{"", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.valid, IsValidEmail(test.email), test.email)
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/analytics/event", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientIP(r))

	r = httptest.NewRequest("POST", "/analytics/event", nil)
	r.RemoteAddr = "198.51.100.2:51234"
	assert.Equal(t, "198.51.100.2", ClientIP(r))

	r = httptest.NewRequest("POST", "/analytics/event", nil)
	r.RemoteAddr = ""
	assert.Equal(t, "unknown", ClientIP(r))

	// a degenerate header must not shadow the fallbacks
	r = httptest.NewRequest("POST", "/analytics/event", nil)
	r.Header.Set("X-Forwarded-For", " , 10.0.0.1")
	r.RemoteAddr = "198.51.100.2:51234"
	assert.Equal(t, "198.51.100.2", ClientIP(r))

	r = httptest.NewRequest("POST", "/analytics/event", nil)
	r.Header.Set("X-Forwarded-For", ",")
	r.RemoteAddr = ""
	assert.Equal(t, "unknown", ClientIP(r))
}
