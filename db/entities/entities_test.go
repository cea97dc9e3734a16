package entities

import (
	"testing"

	"github.com/safehaven-world/safehaven/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func TestAnalyticsEventValidate(t *testing.T) {
	event := AnalyticsEvent{}
	err := event.Validate()
	assert.Error(t, err)

	var e *errs.ValidateError
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, "required field missing", e.Fields["event_type"])

	event.EventType = "page_view"
	assert.NoError(t, event.Validate())
}

func TestSubscriberValidate(t *testing.T) {
	s := NewsletterSubscriber{Email: "not-an-email"}
	err := s.Validate()
	assert.Error(t, err)

	var e *errs.ValidateError
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, "invalid email address", e.Fields["email"])

	s.Email = "ada@example.com"
	assert.NoError(t, s.Validate())
}

func TestPurchaseValidate(t *testing.T) {
	p := BookPurchase{
		BookID:          "singularity",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Quantity:        0,
		Format:          "hardcover",
		PayPalOrderID:   "5O190127TN364715T",
		PayPalCaptureID: "3C679366HH908993F",
	}
	err := p.Validate()
	assert.Error(t, err)

	var e *errs.ValidateError
	assert.ErrorAs(t, err, &e)
	assert.Equal(t, "value must be >= 1", e.Fields["quantity"])

	p.Quantity = 1
	assert.NoError(t, p.Validate())
}

func TestContactValidate(t *testing.T) {
	c := ContactSubmission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "Hi",
	}
	assert.NoError(t, c.Validate())

	c.Subject = ""
	assert.Error(t, c.Validate())
}
