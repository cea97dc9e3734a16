package api

import (
	"context"
	"testing"

	"github.com/safehaven-world/safehaven/db"
	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/services/mailer"
	"github.com/stretchr/testify/assert"
)

func TestCreatePreorder(t *testing.T) {
	var inserted *entities.BookPreorder
	preorders := &fakePreorderDAO{
		insert: func(ctx context.Context, preorder *entities.BookPreorder) error {
			preorder.ID = 3
			inserted = preorder
			return nil
		},
	}
	m := &fakeMailer{}
	api := newTestAPI(&db.DB{Preorders: preorders}, m, &fakePayments{})

	w := do(api, "POST", "/api/book-preorder", map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
	})

	assert.Equal(t, 201, w.Code)
	assert.Contains(t, w.Body.String(), "pre-ordering the book")

	assert.Equal(t, "Ada", inserted.FirstName)
	assert.Nil(t, inserted.Organization)

	// preorder reuses the contact templates with a synthesized subject
	if assert.Len(t, m.notifications, 1) {
		assert.Equal(t, mailer.KindContact, m.notifications[0].kind)
		assert.Equal(t, "Book Pre-order", m.notifications[0].data.Subject)
		assert.Contains(t, m.notifications[0].data.Message, "Ada Lovelace (ada@example.com)")
	}
	assert.Len(t, m.confirmations, 1)
}

func TestCreatePreorderMissingFields(t *testing.T) {
	api := newTestAPI(&db.DB{}, &fakeMailer{}, &fakePayments{})

	w := do(api, "POST", "/api/book-preorder", map[string]interface{}{"firstName": "Ada"})
	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error":"Please fill in all required fields"}`, w.Body.String())
}

func TestCreatePreorderInvalidEmail(t *testing.T) {
	api := newTestAPI(&db.DB{}, &fakeMailer{}, &fakePayments{})

	w := do(api, "POST", "/api/book-preorder", map[string]interface{}{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "bad",
	})
	assert.Equal(t, 400, w.Code)
	assert.JSONEq(t, `{"error":"Please provide a valid email address"}`, w.Body.String())
}
