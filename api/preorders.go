package api

import (
	"fmt"
	"net/http"

	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/services/mailer"
)

type preorderRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Organization *string `json:"organization"`
}

// CreatePreorder records interest in the upcoming book.
func (api *API) CreatePreorder(w http.ResponseWriter, r *http.Request) {
	var req preorderRequest
	if err := api.bind(r, &req); err != nil {
		api.error(400, w, "Invalid request body")
		return
	}

	preorder := entities.BookPreorder{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Organization: req.Organization,
	}
	if err := preorder.Validate(); err != nil {
		api.error(400, w, formMessage(err, "Please fill in all required fields"))
		return
	}
	if err := api.db.Preorders.Insert(r.Context(), &preorder); err != nil {
		api.log.Errorw("failed to insert book preorder", "error", err)
		api.error(500, w, "An error occurred while processing your request")
		return
	}

	data := mailer.Data{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   "Book Pre-order",
	}
	if req.Organization != nil {
		data.Organization = *req.Organization
	}
	data.Message = fmt.Sprintf("New book pre-order interest from %s %s (%s).", req.FirstName, req.LastName, req.Email)

	if err := api.mailer.SendConfirmation(r.Context(), req.Email, mailer.KindContact, data); err != nil {
		api.log.Errorw("failed to send confirmation email", "error", err, "email", req.Email)
	}
	if err := api.mailer.SendNotification(r.Context(), mailer.KindContact, data); err != nil {
		api.log.Errorw("failed to send notification email", "error", err)
	}

	api.json(201, w, types.MessageResponse{
		Message: "Thank you for your interest in pre-ordering the book! We will notify you when it becomes available.",
	})
}
