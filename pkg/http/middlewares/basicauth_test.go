package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})

	tests := []struct {
		desc           string
		disabled       bool
		username       string
		password       string
		expectedStatus int
	}{
		{desc: "valid credentials", username: "admin", password: "secret", expectedStatus: 200},
		{desc: "wrong password", username: "admin", password: "nope", expectedStatus: 401},
		{desc: "wrong username", username: "root", password: "secret", expectedStatus: 401},
		{desc: "bypass flag skips check", disabled: true, expectedStatus: 200},
	}

	for _, test := range tests {
		m := NewBasicAuth("Admin Area", "admin", "secret", test.disabled)
		r := httptest.NewRequest("GET", "/analytics-dashboard", nil)
		if test.username != "" {
			r.SetBasicAuth(test.username, test.password)
		}
		w := httptest.NewRecorder()
		m.Handle(ok).ServeHTTP(w, r)
		assert.Equal(t, test.expectedStatus, w.Code, test.desc)
	}
}

func TestBasicAuthChallenge(t *testing.T) {
	m := NewBasicAuth("Admin Area", "admin", "secret", false)
	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	m.Handle(http.NotFoundHandler()).ServeHTTP(w, r)
	assert.Equal(t, 401, w.Code)
	assert.Equal(t, `Basic realm="Admin Area"`, w.Header().Get("WWW-Authenticate"))
}
