package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/farmledger/server/internal/models"
	"github.com/farmledger/server/internal/storage"
)

// itemRequest carries the five item fields plus the owning identifier.
// Values pass through as given; negative prices and quantities are
// stored, matching the relaxed item contract.
type itemRequest struct {
	UserID        string  `json:"userId"`
	Name          string  `json:"name"`
	QuantityValue float64 `json:"quantity_value"`
	QuantityUnit  string  `json:"quantity_unit"`
	BuyingPrice   float64 `json:"buying_price"`
	SellingPrice  float64 `json:"selling_price"`
}

type itemsResponse struct {
	Success bool          `json:"success"`
	Items   []models.Item `json:"items"`
}

type itemResponse struct {
	Success bool         `json:"success"`
	Item    *models.Item `json:"item"`
	Message string       `json:"message,omitempty"`
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	items, err := s.store.ListItems(r.Context(), userID)
	if err != nil {
		slog.Error("List items failed", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}

	writeJSON(w, http.StatusOK, itemsResponse{Success: true, Items: items})
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &models.Item{
		UserID:        req.UserID,
		Name:          req.Name,
		QuantityValue: req.QuantityValue,
		QuantityUnit:  req.QuantityUnit,
		BuyingPrice:   req.BuyingPrice,
		SellingPrice:  req.SellingPrice,
	}
	if err := s.store.CreateItem(r.Context(), item); err != nil {
		slog.Error("Create item failed", "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	writeJSON(w, http.StatusOK, itemResponse{
		Success: true,
		Item:    item,
		Message: "Item added successfully",
	})
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &models.Item{
		ID:            itemID,
		UserID:        req.UserID,
		Name:          req.Name,
		QuantityValue: req.QuantityValue,
		QuantityUnit:  req.QuantityUnit,
		BuyingPrice:   req.BuyingPrice,
		SellingPrice:  req.SellingPrice,
	}
	err := s.store.UpdateItem(r.Context(), item)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("Update item failed", "item_id", itemID, "user_id", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	writeJSON(w, http.StatusOK, itemResponse{
		Success: true,
		Item:    item,
		Message: "Item updated successfully",
	})
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	userID := r.PathValue("userId")

	err := s.store.DeleteItem(r.Context(), itemID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("Delete item failed", "item_id", itemID, "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Item deleted successfully"})
}
