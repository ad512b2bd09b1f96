// Package server exposes the HTTP+JSON API surface.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/farmledger/server/internal/identity"
	"github.com/farmledger/server/internal/storage"
)

// Server holds the handler dependencies. Handlers are stateless between
// calls; the store is the only shared state.
type Server struct {
	store     storage.Store
	bootstrap *identity.Bootstrapper
	now       func() time.Time
}

// New creates a Server backed by the given store.
func New(store storage.Store) *Server {
	return &Server{
		store:     store,
		bootstrap: identity.New(store),
		now:       time.Now,
	}
}

// Routes returns a mux with every API route registered.
// The "/" fallback (static files or liveness banner) is wired by the
// caller so the API surface stays independent of deployment layout.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/user/init", s.handleUserInit)

	mux.HandleFunc("GET /api/items/{userId}", s.handleListItems)
	mux.HandleFunc("POST /api/items", s.handleCreateItem)
	mux.HandleFunc("PUT /api/items/{id}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /api/items/{id}/{userId}", s.handleDeleteItem)

	mux.HandleFunc("GET /api/analytics/{userId}", s.handleAnalytics)

	mux.HandleFunc("GET /api/settings/{userId}", s.handleGetSettings)
	mux.HandleFunc("PUT /api/settings/{userId}", s.handleUpdateSettings)

	mux.HandleFunc("POST /api/goals", s.handleCreateGoal)
	mux.HandleFunc("GET /api/goals/{userId}", s.handleGetGoal)
	mux.HandleFunc("GET /api/goals/{userId}/progress", s.handleGoalProgress)

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
