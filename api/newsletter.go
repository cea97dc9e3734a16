package api

import (
	"errors"
	"net/http"

	"github.com/safehaven-world/safehaven/db/dao"
	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/services/mailer"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeNewsletter registers an email for the newsletter. Subscribing an
// already registered address is reported as success, not conflict.
func (api *API) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := api.bind(r, &req); err != nil {
		api.error(400, w, "Please provide a valid email address")
		return
	}

	subscriber := entities.NewsletterSubscriber{
		Email:  req.Email,
		Status: entities.SubscriberStatusActive,
	}
	if err := subscriber.Validate(); err != nil {
		api.error(400, w, "Please provide a valid email address")
		return
	}

	existing, err := api.db.Subscribers.GetByEmail(r.Context(), req.Email)
	if err != nil {
		api.log.Errorw("failed to look up subscriber", "error", err)
		api.error(500, w, "An error occurred while processing your request")
		return
	}
	if existing != nil {
		api.json(200, w, types.MessageResponse{Message: "You are already subscribed to our newsletter"})
		return
	}

	if err := api.db.Subscribers.Insert(r.Context(), &subscriber); err != nil {
		// a concurrent subscribe between the lookup and the insert lands here
		if errors.Is(err, dao.ErrConstraintViolation) {
			api.json(200, w, types.MessageResponse{Message: "You are already subscribed to our newsletter"})
			return
		}
		api.log.Errorw("failed to insert subscriber", "error", err)
		api.error(500, w, "An error occurred while processing your request")
		return
	}

	if err := api.mailer.SendConfirmation(r.Context(), req.Email, mailer.KindNewsletter, mailer.Data{Email: req.Email}); err != nil {
		api.log.Errorw("failed to send confirmation email", "error", err, "email", req.Email)
	}

	api.json(201, w, types.MessageResponse{Message: "Successfully subscribed to the newsletter"})
}
