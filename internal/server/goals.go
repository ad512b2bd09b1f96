package server

import (
	"log/slog"
	"net/http"

	"github.com/farmledger/server/internal/analytics"
	"github.com/farmledger/server/internal/goals"
	"github.com/farmledger/server/internal/models"
)

type goalRequest struct {
	UserID        string  `json:"userId"`
	TargetRevenue float64 `json:"target_revenue"`
	TargetProfit  float64 `json:"target_profit"`
	Deadline      string  `json:"deadline"`
}

// goalResponse carries the current goal. Goal is null when none exists;
// that is a success, not an error.
type goalResponse struct {
	Success bool         `json:"success"`
	Goal    *models.Goal `json:"goal"`
	Message string       `json:"message,omitempty"`
}

type progressResponse struct {
	Success  bool            `json:"success"`
	Progress *goals.Progress `json:"progress"`
	Message  string          `json:"message,omitempty"`
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal := &models.Goal{
		UserID:        req.UserID,
		TargetRevenue: req.TargetRevenue,
		TargetProfit:  req.TargetProfit,
		Deadline:      req.Deadline,
	}
	if err := s.store.CreateGoal(r.Context(), goal); err != nil {
		slog.Error("Create goal failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to set goal")
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{
		Success: true,
		Goal:    goal,
		Message: "Goal set successfully",
	})
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	goal, err := s.store.LatestGoal(r.Context(), userID)
	if err != nil {
		slog.Error("Get goal failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch goal")
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{Success: true, Goal: goal})
}

// handleGoalProgress projects the latest goal against a fresh analytics
// snapshot. Monetary gaps are formatted with the user's currency; users
// without a settings record fall back to the default currency.
func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	goal, err := s.store.LatestGoal(r.Context(), userID)
	if err != nil {
		slog.Error("Goal progress failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch goal")
		return
	}
	if goal == nil {
		writeJSON(w, http.StatusOK, progressResponse{Success: true, Message: "No goal set"})
		return
	}

	items, err := s.store.ListItems(r.Context(), userID)
	if err != nil {
		slog.Error("Goal progress failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to calculate analytics")
		return
	}

	currency := models.DefaultCurrency
	if settings, err := s.store.GetSettings(r.Context(), userID); err == nil && settings != nil {
		currency = settings.Currency
	}

	progress := goals.Project(goal, analytics.Compute(items), currency, s.now())
	writeJSON(w, http.StatusOK, progressResponse{Success: true, Progress: &progress})
}
