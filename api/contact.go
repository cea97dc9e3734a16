package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/safehaven-world/safehaven/db/dao"
	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/services/mailer"
)

type contactRequest struct {
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Organization *string `json:"organization"`
	Subject      string  `json:"subject"`
	Message      string  `json:"message"`
	Newsletter   bool    `json:"newsletter"`
}

// SubmitContact stores a contact form submission and, when the sender opted
// in, registers them for the newsletter in the same transaction.
func (api *API) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := api.bind(r, &req); err != nil {
		api.error(400, w, "Invalid request body")
		return
	}

	submission := entities.ContactSubmission{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Organization:    req.Organization,
		Subject:         req.Subject,
		Message:         req.Message,
		NewsletterOptIn: req.Newsletter,
		Status:          "new",
	}
	if err := submission.Validate(); err != nil {
		api.error(400, w, formMessage(err, "Please fill in all required fields"))
		return
	}

	var err error
	if req.Newsletter {
		err = api.db.TX(r.Context(), func(ctx context.Context) error {
			if err := api.db.Contacts.Insert(ctx, &submission); err != nil {
				return err
			}
			existing, err := api.db.Subscribers.GetByEmail(ctx, req.Email)
			if err != nil || existing != nil {
				return err
			}
			subscriber := entities.NewsletterSubscriber{
				Email:  req.Email,
				Status: entities.SubscriberStatusActive,
			}
			if err := api.db.Subscribers.Insert(ctx, &subscriber); err != nil && !errors.Is(err, dao.ErrConstraintViolation) {
				return err
			}
			return nil
		})
	} else {
		err = api.db.Contacts.Insert(r.Context(), &submission)
	}
	if err != nil {
		api.log.Errorw("failed to store contact submission", "error", err)
		api.error(500, w, "An error occurred while processing your request")
		return
	}

	data := mailer.Data{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if req.Organization != nil {
		data.Organization = *req.Organization
	}
	if err := api.mailer.SendConfirmation(r.Context(), req.Email, mailer.KindContact, data); err != nil {
		api.log.Errorw("failed to send confirmation email", "error", err, "email", req.Email)
	}
	if err := api.mailer.SendNotification(r.Context(), mailer.KindContact, data); err != nil {
		api.log.Errorw("failed to send notification email", "error", err)
	}

	api.json(201, w, types.MessageResponse{Message: "Your message has been submitted successfully"})
}
