package api

import (
	"encoding/json"
	"net/http"

	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/utils"
)

type recordEventRequest struct {
	EventType string          `json:"eventType"`
	EventData json.RawMessage `json:"eventData"`
}

// RecordEvent ingests one analytics event. The row is append-only; identity,
// origin and client descriptor are best-effort hints, never validated.
func (api *API) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var req recordEventRequest
	if err := api.bind(r, &req); err != nil {
		api.error(400, w, "Invalid request body")
		return
	}

	event := entities.AnalyticsEvent{
		EventType: req.EventType,
		EventData: req.EventData,
		IPAddress: utils.ClientIP(r),
		UserAgent: utils.DefaultIfZero(r.Header.Get("User-Agent"), "unknown"),
	}
	if err := event.Validate(); err != nil {
		api.error(400, w, "Event type is required")
		return
	}

	// The auth token is decoded without verification. It only attributes the
	// event to a user; a bad token degrades to an anonymous row.
	if cookie, err := r.Cookie("auth_token"); err == nil && cookie.Value != "" {
		userID, err := utils.ParseTokenUserID(cookie.Value)
		if err != nil {
			api.log.Debugw("failed to parse auth token", "error", err)
		} else {
			event.UserID = &userID
		}
	}

	if err := api.db.Events.Insert(r.Context(), &event); err != nil {
		api.log.Errorw("failed to insert analytics event", "error", err, "event_type", event.EventType)
		api.error(500, w, "An error occurred while processing your request")
		return
	}

	api.json(201, w, types.MessageResponse{
		Message: "Event recorded successfully",
		EventID: &event.ID,
	})
}
