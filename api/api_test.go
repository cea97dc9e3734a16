package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/db"
	"github.com/safehaven-world/safehaven/db/dao"
	"github.com/safehaven-world/safehaven/db/entities"
	"github.com/safehaven-world/safehaven/services/mailer"
	"github.com/safehaven-world/safehaven/services/payment"
	"github.com/stretchr/testify/assert"
)

// fakes override only the methods a test exercises; anything else panics
// through the embedded nil interface.

type fakeEventDAO struct {
	dao.EventDAO
	insert func(ctx context.Context, event *entities.AnalyticsEvent) error
}

func (f *fakeEventDAO) Insert(ctx context.Context, event *entities.AnalyticsEvent) error {
	return f.insert(ctx, event)
}

type fakeSubscriberDAO struct {
	dao.SubscriberDAO
	getByEmail func(ctx context.Context, email string) (*entities.NewsletterSubscriber, error)
	insert     func(ctx context.Context, subscriber *entities.NewsletterSubscriber) error
}

func (f *fakeSubscriberDAO) GetByEmail(ctx context.Context, email string) (*entities.NewsletterSubscriber, error) {
	return f.getByEmail(ctx, email)
}

func (f *fakeSubscriberDAO) Insert(ctx context.Context, subscriber *entities.NewsletterSubscriber) error {
	return f.insert(ctx, subscriber)
}

type fakeContactDAO struct {
	dao.ContactDAO
	insert func(ctx context.Context, submission *entities.ContactSubmission) error
}

func (f *fakeContactDAO) Insert(ctx context.Context, submission *entities.ContactSubmission) error {
	return f.insert(ctx, submission)
}

type fakePreorderDAO struct {
	dao.PreorderDAO
	insert func(ctx context.Context, preorder *entities.BookPreorder) error
}

func (f *fakePreorderDAO) Insert(ctx context.Context, preorder *entities.BookPreorder) error {
	return f.insert(ctx, preorder)
}

type fakePurchaseDAO struct {
	dao.PurchaseDAO
	insert func(ctx context.Context, purchase *entities.BookPurchase) error
}

func (f *fakePurchaseDAO) Insert(ctx context.Context, purchase *entities.BookPurchase) error {
	return f.insert(ctx, purchase)
}

type mailerCall struct {
	kind mailer.Kind
	to   string
	data mailer.Data
}

type fakeMailer struct {
	confirmations []mailerCall
	notifications []mailerCall
	err           error
}

func (f *fakeMailer) SendConfirmation(ctx context.Context, email string, kind mailer.Kind, data mailer.Data) error {
	f.confirmations = append(f.confirmations, mailerCall{kind: kind, to: email, data: data})
	return f.err
}

func (f *fakeMailer) SendNotification(ctx context.Context, kind mailer.Kind, data mailer.Data) error {
	f.notifications = append(f.notifications, mailerCall{kind: kind, data: data})
	return f.err
}

type fakePayments struct {
	configured bool
	create     func(ctx context.Context, items []payment.OrderItem, amount float64) (json.RawMessage, error)
	capture    func(ctx context.Context, orderID string) (json.RawMessage, error)
}

func (f *fakePayments) IsConfigured() bool {
	return f.configured
}

func (f *fakePayments) CreateOrder(ctx context.Context, items []payment.OrderItem, amount float64) (json.RawMessage, error) {
	return f.create(ctx, items, amount)
}

func (f *fakePayments) CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	return f.capture(ctx, orderID)
}

func newTestAPI(database *db.DB, m Mailer, p Payments) *API {
	return NewAPI(Options{
		Config:   config.New(),
		DB:       database,
		Mailer:   m,
		Payments: p,
	})
}

func do(api *API, method, path string, body interface{}, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	r := httptest.NewRequest(method, path, &buf)
	for _, fn := range mutate {
		fn(r)
	}
	w := httptest.NewRecorder()
	api.Handler().ServeHTTP(w, r)
	return w
}

func TestNotFound(t *testing.T) {
	api := newTestAPI(&db.DB{}, &fakeMailer{}, &fakePayments{})
	w := do(api, "GET", "/nope", nil)
	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestIndex(t *testing.T) {
	api := newTestAPI(&db.DB{}, &fakeMailer{}, &fakePayments{})
	w := do(api, "GET", "/", nil)
	assert.Equal(t, 200, w.Code)

	var resp IndexResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome to SafeHaven", resp.Message)
}
