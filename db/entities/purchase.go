package entities

import (
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/utils"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type BookPurchase struct {
	ID              int64         `json:"id" db:"id"`
	BookID          string        `json:"book_id" db:"book_id" validate:"required,max=50"`
	FirstName       string        `json:"first_name" db:"first_name" validate:"required"`
	LastName        string        `json:"last_name" db:"last_name" validate:"required"`
	Email           string        `json:"email" db:"email" validate:"required,email"`
	Address         *string       `json:"address" db:"address"`
	City            *string       `json:"city" db:"city"`
	State           *string       `json:"state" db:"state"`
	PostalCode      *string       `json:"postal_code" db:"postal_code"`
	Country         *string       `json:"country" db:"country"`
	Quantity        int           `json:"quantity" db:"quantity" validate:"gte=1"`
	Format          string        `json:"format" db:"format" validate:"max=50"`
	PayPalOrderID   string        `json:"paypal_order_id" db:"paypal_order_id" validate:"required"`
	PayPalCaptureID string        `json:"paypal_capture_id" db:"paypal_capture_id" validate:"required"`
	TotalAmount     float64       `json:"total_amount" db:"total_amount"`
	PaymentStatus   PaymentStatus `json:"payment_status" db:"payment_status"`
	PurchasedAt     types.Time    `json:"purchased_at" db:"purchased_at"`
	Fulfilled       bool          `json:"fulfilled" db:"fulfilled"`
	FulfillmentDate *types.Time   `json:"fulfillment_date" db:"fulfillment_date"`
}

func (m *BookPurchase) Validate() error {
	return utils.Validate(m)
}
