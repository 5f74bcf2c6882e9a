package rest

import "net/http"

// NewRouter wires the API routes onto a ServeMux. Middleware is applied by
// the caller so tests can exercise the bare routes.
func NewRouter(journal *JournalHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /{$}", journal.Create)
	mux.HandleFunc("GET /{$}", journal.List)
	mux.HandleFunc("DELETE /{$}", journal.Delete)

	mux.HandleFunc("GET /health", health.Live)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)

	return mux
}
