package admin

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/safehaven-world/safehaven"
	"github.com/safehaven-world/safehaven/config"
	"github.com/safehaven-world/safehaven/db/dao"
	"github.com/safehaven-world/safehaven/pkg/http/middlewares"
	"github.com/safehaven-world/safehaven/pkg/http/response"
	"github.com/safehaven-world/safehaven/pkg/types"
	"go.uber.org/zap"
)

// Database is the read-side store contract the dashboard needs: a liveness
// probe plus access to the analytics event queries.
type Database interface {
	Ping() error
	EventStore() dao.EventDAO
}

// API serves the admin endpoints.
type API struct {
	cfg         *config.Config
	db          Database
	log         *zap.SugaredLogger
	middlewares []mux.MiddlewareFunc
}

type Options struct {
	Config      *config.Config
	DB          Database
	Middlewares []mux.MiddlewareFunc
}

func NewAPI(opts Options) *API {
	return &API{
		cfg:         opts.Config,
		db:          opts.DB,
		log:         zap.S(),
		middlewares: opts.Middlewares,
	}
}

type IndexResponse struct {
	Version string `json:"version"`
	Message string `json:"message"`
}

func (api *API) Index(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, 200, IndexResponse{
		Version: safehaven.VERSION,
		Message: "SafeHaven Admin",
	})
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

	auth := middlewares.NewBasicAuth(
		"SafeHaven Admin",
		api.cfg.Admin.Username,
		string(api.cfg.Admin.Password),
		api.cfg.Admin.AuthDisabled,
	)
	r.Use(auth.Handle)

	r.HandleFunc("/", api.Index).Methods("GET")
	r.HandleFunc("/analytics-dashboard", api.Dashboard).Methods("GET")

	return r
}
