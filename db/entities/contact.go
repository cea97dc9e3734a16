package entities

import (
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/utils"
)

type ContactSubmission struct {
	ID               int64      `json:"id" db:"id"`
	FirstName        string     `json:"first_name" db:"first_name" validate:"required,max=100"`
	LastName         string     `json:"last_name" db:"last_name" validate:"required,max=100"`
	Email            string     `json:"email" db:"email" validate:"required,email"`
	Organization     *string    `json:"organization" db:"organization"`
	Subject          string     `json:"subject" db:"subject" validate:"required,max=255"`
	Message          string     `json:"message" db:"message" validate:"required"`
	NewsletterOptIn  bool       `json:"newsletter_opt_in" db:"newsletter_opt_in"`
	SubmittedAt      types.Time `json:"submitted_at" db:"submitted_at"`
	Status           string     `json:"status" db:"status"`
}

func (m *ContactSubmission) Validate() error {
	return utils.Validate(m)
}
