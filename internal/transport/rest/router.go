package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/reuse-backend/internal/transport/middleware"
)

// NewRouter wires the probes and the authenticated /api routes. apiMiddleware
// runs on /api only, after the authentication check.
func NewRouter(api *Handler, health *HealthHandler, apiMiddleware ...middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.HandleFunc("/live", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	// The /api group carries no matcher of its own: a PathPrefix subrouter
	// copies its prefix matcher into every route, and that matcher succeeding
	// on the next route clears mux's method-mismatch state, turning 405 into
	// 404.
	s := r.NewRoute().Subrouter()
	s.Use(middleware.RequireUser)
	for _, mw := range apiMiddleware {
		s.Use(mux.MiddlewareFunc(mw))
	}

	s.HandleFunc("/api/items", api.CreateItem).Methods(http.MethodPost)
	s.HandleFunc("/api/items/mine", api.MyItems).Methods(http.MethodGet)
	s.HandleFunc("/api/items/{id}", api.GetItem).Methods(http.MethodGet)
	s.HandleFunc("/api/items/{id}", api.DeleteItem).Methods(http.MethodDelete)

	s.HandleFunc("/api/feed", api.Feed).Methods(http.MethodGet)
	s.HandleFunc("/api/feed/next", api.NextCandidate).Methods(http.MethodGet)

	s.HandleFunc("/api/swipes", api.Swipe).Methods(http.MethodPost)
	s.HandleFunc("/api/likes/mine", api.MyLikes).Methods(http.MethodGet)

	s.HandleFunc("/api/matches", api.Matches).Methods(http.MethodGet)
	s.HandleFunc("/api/matches/{id}/accept", api.AcceptMatch).Methods(http.MethodPost)
	s.HandleFunc("/api/matches/{id}/reject", api.RejectMatch).Methods(http.MethodPost)

	return r
}
