package server

import (
	"log/slog"
	"net/http"

	"github.com/farmledger/server/internal/analytics"
)

type analyticsResponse struct {
	Success   bool               `json:"success"`
	Analytics analytics.Snapshot `json:"analytics"`
}

// handleAnalytics computes a fresh snapshot from the user's items.
// Nothing is persisted; an empty collection yields an all-zero snapshot.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	items, err := s.store.ListItems(r.Context(), userID)
	if err != nil {
		slog.Error("Analytics failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to calculate analytics")
		return
	}

	writeJSON(w, http.StatusOK, analyticsResponse{
		Success:   true,
		Analytics: analytics.Compute(items),
	})
}
