package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/db"
	"github.com/safehaven-world/safehaven/pkg/errs"
	"github.com/safehaven-world/safehaven/pkg/http/middlewares"
	"github.com/safehaven-world/safehaven/pkg/http/response"
	"github.com/safehaven-world/safehaven/pkg/types"
	"github.com/safehaven-world/safehaven/services/mailer"
	"github.com/safehaven-world/safehaven/services/payment"
	"go.uber.org/zap"
)

// Mailer is the transactional email collaborator. Sends are best-effort:
// handlers log failures and never fail the request over them.
type Mailer interface {
	SendConfirmation(ctx context.Context, email string, kind mailer.Kind, data mailer.Data) error
	SendNotification(ctx context.Context, kind mailer.Kind, data mailer.Data) error
}

// Payments drives the PayPal order flow.
type Payments interface {
	IsConfigured() bool
	CreateOrder(ctx context.Context, items []payment.OrderItem, amount float64) (json.RawMessage, error)
	CaptureOrder(ctx context.Context, orderID string) (json.RawMessage, error)
}

// API serves the public site endpoints.
type API struct {
	cfg         *config.Config
	db          *db.DB
	mailer      Mailer
	payments    Payments
	log         *zap.SugaredLogger
	middlewares []mux.MiddlewareFunc
}

type Options struct {
	Config      *config.Config
	DB          *db.DB
	Mailer      Mailer
	Payments    Payments
	Middlewares []mux.MiddlewareFunc
}

func NewAPI(opts Options) *API {
	return &API{
		cfg:         opts.Config,
		db:          opts.DB,
		mailer:      opts.Mailer,
		payments:    opts.Payments,
		log:         zap.S(),
		middlewares: opts.Middlewares,
	}
}

func (api *API) json(code int, w http.ResponseWriter, data interface{}) {
	response.JSON(w, code, data)
}

func (api *API) error(code int, w http.ResponseWriter, message string) {
	api.json(code, w, types.ErrorResponse{Error: message})
}

// bind decodes the request body. A malformed body is a client error, not a
// panic.
func (api *API) bind(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// formMessage picks the public message for a failed form validation.
// Missing or malformed required fields are reported before a bad email
// address, which is the order the forms check in.
func formMessage(err error, missing string) string {
	var ve *errs.ValidateError
	if !errors.As(err, &ve) {
		return missing
	}
	for field, msg := range ve.Fields {
		if field != "email" || msg == "required field missing" {
			return missing
		}
	}
	return "Please provide a valid email address"
}

// Handler returns a http.Handler
func (api *API) Handler() http.Handler {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, 404, types.ErrorResponse{Error: "not found"})
	})

	for _, m := range api.middlewares {
		r.Use(m)
	}
	r.Use(middlewares.PanicRecovery)

	r.HandleFunc("/", api.Index).Methods("GET")

	r.HandleFunc("/analytics/event", api.RecordEvent).Methods("POST")

	r.HandleFunc("/api/newsletter", api.SubscribeNewsletter).Methods("POST")
	r.HandleFunc("/api/contact", api.SubmitContact).Methods("POST")
	r.HandleFunc("/api/book-preorder", api.CreatePreorder).Methods("POST")
	r.HandleFunc("/api/book-purchase", api.RecordPurchase).Methods("POST")

	r.HandleFunc("/api/paypal/create-order", api.CreatePayPalOrder).Methods("POST")
	r.HandleFunc("/api/paypal/capture-order", api.CapturePayPalOrder).Methods("POST")

	return r
}
