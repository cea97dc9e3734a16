package types

// ErrorResponse is the stable error body shape returned by every handler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the stable success body shape.
type MessageResponse struct {
	Message string `json:"message"`
	EventID *int64 `json:"event_id,omitempty"`
	OrderID string `json:"orderId,omitempty"`
}
