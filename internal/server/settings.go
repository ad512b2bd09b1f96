package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/farmledger/server/internal/models"
	"github.com/farmledger/server/internal/storage"
)

type settingsRequest struct {
	Currency string                 `json:"currency"`
	AppName  string                 `json:"app_name"`
	Units    models.UnitPreferences `json:"unit_preferences"`
}

type settingsResponse struct {
	Success  bool                 `json:"success"`
	Settings *models.UserSettings `json:"settings"`
	Message  string               `json:"message,omitempty"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	settings, err := s.store.GetSettings(r.Context(), userID)
	if err != nil {
		slog.Error("Get settings failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	if settings == nil {
		writeError(w, http.StatusNotFound, "User settings not found")
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{Success: true, Settings: settings})
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	var req settingsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings := &models.UserSettings{
		UserID:   userID,
		Currency: req.Currency,
		AppName:  req.AppName,
		Units:    req.Units,
	}
	err := s.store.UpdateSettings(r.Context(), settings)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "User settings not found")
		return
	}
	if err != nil {
		slog.Error("Update settings failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	writeJSON(w, http.StatusOK, settingsResponse{
		Success:  true,
		Settings: settings,
		Message:  "Settings updated successfully",
	})
}
