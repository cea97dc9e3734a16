package api

import (
	"net/http"

	"github.com/safehaven-world/safehaven"
)

type IndexResponse struct {
	Version string `json:"version"`
	Message string `json:"message"`
}

func (api *API) Index(w http.ResponseWriter, r *http.Request) {
	var response IndexResponse

	response.Version = safehaven.VERSION
	response.Message = "Welcome to SafeHaven"

	api.json(200, w, response)
}
