package routes

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OpsHandler serves the inner, non-public surface: liveness and metrics.
// It is bound to a separate address so the public surface keeps its
// strict three-endpoint contract.
func OpsHandler(registry *prometheus.Registry) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/health", health).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	body := []byte(`{"ok":true}`)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
