package middlewares

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuth guards a router with HTTP Basic Authentication. Credentials come
// from configuration; when disabled (development bypass) every request passes.
type BasicAuth struct {
	Realm    string
	Username string
	Password string
	Disabled bool
}

func NewBasicAuth(realm, username, password string, disabled bool) *BasicAuth {
	return &BasicAuth{
		Realm:    realm,
		Username: username,
		Password: password,
		Disabled: disabled,
	}
}

func (m *BasicAuth) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.Disabled {
			next.ServeHTTP(w, r)
			return
		}

		username, password, ok := r.BasicAuth()
		if !ok || !m.valid(username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+m.Realm+`"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *BasicAuth) valid(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(m.Username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(m.Password)) == 1
	return userMatch && passMatch
}
