package entities

import (
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/utils"
)

type BookPreorder struct {
	ID           int64      `json:"id" db:"id"`
	FirstName    string     `json:"first_name" db:"first_name" validate:"required"`
	LastName     string     `json:"last_name" db:"last_name" validate:"required"`
	Email        string     `json:"email" db:"email" validate:"required,email"`
	Organization *string    `json:"organization" db:"organization"`
	SubmittedAt  types.Time `json:"submitted_at" db:"submitted_at"`
}

func (m *BookPreorder) Validate() error {
	return utils.Validate(m)
}
