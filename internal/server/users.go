package server

import (
	"log/slog"
	"net/http"
)

type userInitRequest struct {
	UserID string `json:"userId"`
}

type userInitResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// handleUserInit validates the candidate identifier or mints a new one.
// A lost or garbage identifier is not an error: the client simply gets a
// fresh identity.
func (s *Server) handleUserInit(w http.ResponseWriter, r *http.Request) {
	var req userInitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, created, err := s.bootstrap.Init(r.Context(), req.UserID)
	if err != nil {
		slog.Error("User init failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Server error during user initialization")
		return
	}

	message := "User validated successfully"
	if created {
		message = "New user created successfully"
	}
	writeJSON(w, http.StatusOK, userInitResponse{
		Success: true,
		UserID:  userID,
		Message: message,
	})
}
