package config

import "encoding/json"

// Password is masked when the configuration is dumped.
type Password string

func (p Password) MarshalJSON() ([]byte, error) {
	return json.Marshal("******")
}
