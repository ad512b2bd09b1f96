package server

import (
	"log/slog"
	"net/http"
)

// handleHealth is a liveness probe against the persistence layer.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		slog.Error("Health check failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Database not reachable")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Database connection OK"})
}
