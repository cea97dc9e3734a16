package api

import (
	"net/http"

	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/services/mailer"
	"github.com/safehaven-world/safehaven/utils"
)

type purchaseRequest struct {
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Address         *string `json:"address"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	PostalCode      *string `json:"postalCode"`
	Country         *string `json:"country"`
	BookID          string  `json:"bookId"`
	Quantity        int     `json:"quantity"`
	Format          string  `json:"format"`
	PayPalOrderID   string  `json:"paypalOrderId"`
	PayPalCaptureID string  `json:"paypalCaptureId"`
	TotalAmount     float64 `json:"totalAmount"`
}

// RecordPurchase stores a completed purchase. Payment has already been
// captured by PayPal at this point; this endpoint is bookkeeping plus
// receipts, so it must not fail because of email trouble.
func (api *API) RecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := api.bind(r, &req); err != nil {
		api.error(400, w, "Invalid request body")
		return
	}

	purchase := entities.BookPurchase{
		BookID:          req.BookID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		PostalCode:      req.PostalCode,
		Country:         req.Country,
		Quantity:        utils.DefaultIfZero(req.Quantity, 1),
		Format:          req.Format,
		PayPalOrderID:   req.PayPalOrderID,
		PayPalCaptureID: req.PayPalCaptureID,
		TotalAmount:     req.TotalAmount,
		PaymentStatus:   entities.PaymentStatusCompleted,
	}
	if err := purchase.Validate(); err != nil {
		api.error(400, w, formMessage(err, "Please fill in all required fields and complete payment"))
		return
	}
	if err := api.db.Purchases.Insert(r.Context(), &purchase); err != nil {
		api.log.Errorw("failed to insert book purchase", "error", err, "paypal_order_id", req.PayPalOrderID)
		api.error(500, w, "An error occurred while processing your purchase")
		return
	}

	data := mailer.Data{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		BookID:      req.BookID,
		Format:      req.Format,
		Quantity:    purchase.Quantity,
		TotalAmount: req.TotalAmount,
		OrderID:     req.PayPalOrderID,
	}
	if err := api.mailer.SendConfirmation(r.Context(), req.Email, mailer.KindPurchase, data); err != nil {
		api.log.Errorw("failed to send confirmation email", "error", err, "email", req.Email)
	}
	if err := api.mailer.SendNotification(r.Context(), mailer.KindPurchase, data); err != nil {
		api.log.Errorw("failed to send notification email", "error", err)
	}

	api.json(201, w, types.MessageResponse{
		Message: "Thank you for your purchase! We'll send you a confirmation email with details.",
		OrderID: req.PayPalOrderID,
	})
}
