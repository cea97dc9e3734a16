package entities

import (
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/utils"
)

type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
)

type NewsletterSubscriber struct {
	ID             int64            `json:"id" db:"id"`
	Email          string           `json:"email" db:"email" validate:"required,email"`
	SubscribedAt   types.Time       `json:"subscribed_at" db:"subscribed_at"`
	UnsubscribedAt *types.Time      `json:"unsubscribed_at" db:"unsubscribed_at"`
	Status         SubscriberStatus `json:"status" db:"status"`
}

func (m *NewsletterSubscriber) Validate() error {
	return utils.Validate(m)
}
