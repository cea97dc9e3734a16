package entities

import (
	"encoding/json"

	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/utils"
)

// AnalyticsEvent is one recorded user/system interaction. Rows are
// append-only: nothing in the codebase updates or deletes them (the optional
// retention purge is the single exception).
type AnalyticsEvent struct {
	ID        int64           `json:"id" db:"id"`
	EventType string          `json:"event_type" db:"event_type" validate:"required"`
	EventData json.RawMessage `json:"event_data" db:"event_data"`
	UserID    *int64          `json:"user_id" db:"user_id"`
	IPAddress string          `json:"ip_address" db:"ip_address"`
	UserAgent string          `json:"user_agent" db:"user_agent"`
	CreatedAt types.Time      `json:"created_at" db:"created_at"`
}

func (m *AnalyticsEvent) Validate() error {
	return utils.Validate(m)
}

// EventTypeCount is one row of the counts-by-type aggregation.
type EventTypeCount struct {
	EventType string `json:"event_type" db:"event_type"`
	Count     int64  `json:"count" db:"count"`
}

// DailyEventCount is one row of the daily time-series aggregation.
type DailyEventCount struct {
	Date  types.Time `json:"date" db:"date"`
	Count int64      `json:"count" db:"count"`
}
