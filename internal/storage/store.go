// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/farmledger/server/internal/models"
)

// ErrNotFound is returned by row-scoped operations when no row matches
// the (id, userId) pair. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// Store defines the interface for FarmLedger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handler layer.
type Store interface {
	// GetSettings retrieves the settings record for a user identifier.
	// Returns (nil, nil) if the identifier has never been bootstrapped.
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)

	// CreateSettings inserts a new settings record.
	// The CreatedAt/UpdatedAt fields will be populated by the store.
	CreateSettings(ctx context.Context, settings *models.UserSettings) error

	// UpdateSettings replaces the mutable settings fields.
	// Returns ErrNotFound if no record exists for settings.UserID.
	UpdateSettings(ctx context.Context, settings *models.UserSettings) error

	// ListItems returns all items for a user identifier, newest first.
	// An empty slice is a valid, non-error result.
	ListItems(ctx context.Context, userID string) ([]models.Item, error)

	// CreateItem persists a new item. The ID, CreatedAt and UpdatedAt
	// fields will be populated by the store.
	CreateItem(ctx context.Context, item *models.Item) error

	// UpdateItem replaces the five mutable fields of the item matching
	// (item.ID, item.UserID) and bumps its modification timestamp.
	// Returns ErrNotFound if no row matches both; never creates.
	UpdateItem(ctx context.Context, item *models.Item) error

	// DeleteItem permanently removes the item matching (itemID, userID).
	// Returns ErrNotFound if no row matches both.
	DeleteItem(ctx context.Context, itemID, userID string) error

	// CreateGoal persists a new goal. The ID and CreatedAt fields will
	// be populated by the store. Existing goals are left untouched.
	CreateGoal(ctx context.Context, goal *models.Goal) error

	// LatestGoal returns the most-recently-created goal for a user
	// identifier, or (nil, nil) if none exists.
	LatestGoal(ctx context.Context, userID string) (*models.Goal, error)

	// Ping verifies the persistence layer is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
