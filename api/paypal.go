package api

import (
	"net/http"

	"github.com/safehaven-world/safehaven/services/payment"
)

type createOrderRequest struct {
	Items  []payment.OrderItem `json:"items"`
	Amount float64             `json:"amount"`
}

type captureOrderRequest struct {
	OrderID string `json:"orderId"`
}

// CreatePayPalOrder proxies order creation to PayPal and relays the
// provider's response body untouched.
func (api *API) CreatePayPalOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := api.bind(r, &req); err != nil {
		api.error(400, w, "Invalid request body")
		return
	}
	if len(req.Items) == 0 || req.Amount == 0 {
		api.error(400, w, "Invalid request: missing required fields")
		return
	}
	if !api.payments.IsConfigured() {
		api.log.Error("paypal credentials are not configured")
		api.error(500, w, "PayPal configuration error")
		return
	}

	order, err := api.payments.CreateOrder(r.Context(), req.Items, req.Amount)
	if err != nil {
		api.log.Errorw("failed to create paypal order", "error", err)
		api.error(500, w, "An error occurred while creating the PayPal order")
		return
	}
	api.json(200, w, order)
}

// CapturePayPalOrder finalizes payment for an approved order.
func (api *API) CapturePayPalOrder(w http.ResponseWriter, r *http.Request) {
	var req captureOrderRequest
	if err := api.bind(r, &req); err != nil {
		api.error(400, w, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		api.error(400, w, "Invalid request: missing order ID")
		return
	}
	if !api.payments.IsConfigured() {
		api.log.Error("paypal credentials are not configured")
		api.error(500, w, "PayPal configuration error")
		return
	}

	capture, err := api.payments.CaptureOrder(r.Context(), req.OrderID)
	if err != nil {
		api.log.Errorw("failed to capture paypal order", "error", err, "order_id", req.OrderID)
		api.error(500, w, "An error occurred while capturing the PayPal order")
		return
	}
	api.json(200, w, capture)
}
