package types

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestTimeJSON(t *testing.T) {
	parsed, err := time.Parse(time.RFC3339Nano, "2006-01-02T15:04:05.999Z")
	assert.Nil(t, err)
	t1 := NewTime(parsed)
	s, err := json.Marshal(t1)
	assert.Nil(t, err)
	assert.EqualValues(t, "1136214245999", string(s))

	var t2 Time
	json.Unmarshal([]byte("1136214245999"), &t2)
	assert.True(t, t1.Equal(t2))
}

func TestTimeScan(t *testing.T) {
	var v Time
	assert.Nil(t, v.Scan(nil))
	assert.True(t, v.Equal(NewTime(time.Unix(0, 0))))

	now := time.Now()
	assert.Nil(t, v.Scan(now))
	assert.True(t, v.Equal(NewTime(now)))

	assert.Error(t, v.Scan("2006-01-02"))
}
