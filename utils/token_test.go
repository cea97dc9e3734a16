package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeToken(payload string) string {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return "header." + encoded + ".signature"
}

func TestParseTokenUserID(t *testing.T) {
	id, err := ParseTokenUserID(makeToken(`{"userId": 42, "exp": 1700000000}`))
	assert.NoError(t, err)
	assert.EqualValues(t, 42, id)
}

func TestParseTokenUserIDErrors(t *testing.T) {
	tests := []struct {
		desc  string
		token string
	}{
		{"not a jwt", "plain-string"},
		{"two segments", "a.b"},
		{"payload not base64", "a.%%%.c"},
		{"payload not json", makeToken("not json")},
		{"missing claim", makeToken(`{"sub": "x"}`)},
	}
	for _, test := range tests {
		_, err := ParseTokenUserID(test.token)
		assert.Error(t, err, test.desc)
	}
}
