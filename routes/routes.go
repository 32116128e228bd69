package routes

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// Endpoints is the whole public surface of the service. NotFound handles
// both unknown paths and known paths with the wrong method so every miss
// produces the same JSON body.
type Endpoints struct {
	Status   http.Handler
	Login    http.Handler
	Logout   http.Handler
	NotFound http.Handler
}

func Handler(basePath string, endpoints Endpoints) http.Handler {
	base := NormalizeBasePath(basePath)

	router := mux.NewRouter()
	router.Handle(base+"/status", endpoints.Status).Methods(http.MethodGet)
	router.Handle(base+"/login", endpoints.Login).Methods(http.MethodPost)
	router.Handle(base+"/logout", endpoints.Logout).Methods(http.MethodPost)
	router.NotFoundHandler = endpoints.NotFound
	router.MethodNotAllowedHandler = endpoints.NotFound

	return router
}

func NormalizeBasePath(basePath string) string {
	return "/" + strings.Trim(basePath, "/")
}
