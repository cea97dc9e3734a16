package utils

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ParseTokenUserID extracts the userId claim from a JWT without verifying the
// signature. The site only uses it as a best-effort identity hint; callers
// must treat failures as "anonymous", never as a request error.
func ParseTokenUserID(token string) (int64, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return 0, errors.New("malformed token")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		// some issuers pad the payload segment
		payload, err = base64.URLEncoding.DecodeString(parts[1])
		if err != nil {
			return 0, errors.Wrap(err, "decoding token payload")
		}
	}

	if !gjson.ValidBytes(payload) {
		return 0, errors.New("token payload is not JSON")
	}
	claim := gjson.GetBytes(payload, "userId")
	if !claim.Exists() {
		return 0, errors.New("token payload has no userId")
	}
	return claim.Int(), nil
}
