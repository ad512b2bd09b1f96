// Package identity implements the user-identity bootstrap protocol.
//
// A "user" is a device holding an opaque identifier, not an account.
// Bootstrap is idempotent for known identifiers and self-healing for
// unknown or garbage ones: a client that lost its stored identifier
// receives a fresh one instead of an error.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/farmledger/server/internal/models"
	"github.com/farmledger/server/internal/storage"
)

// Bootstrapper validates or mints user identifiers.
type Bootstrapper struct {
	store storage.Store
}

// New creates a Bootstrapper backed by the given store.
func New(store storage.Store) *Bootstrapper {
	return &Bootstrapper{store: store}
}

// Init returns a valid identifier for the caller to use thereafter.
//
// A candidate with an existing settings record is returned unchanged and
// nothing is written. Otherwise a fresh UUID is generated and a settings
// record with all-default values is inserted for it: exactly zero or one
// insert per call.
func (b *Bootstrapper) Init(ctx context.Context, candidate string) (userID string, created bool, err error) {
	if candidate != "" {
		settings, err := b.store.GetSettings(ctx, candidate)
		if err != nil {
			return "", false, fmt.Errorf("failed to look up candidate: %w", err)
		}
		if settings != nil {
			return candidate, false, nil
		}
	}

	userID = uuid.New().String()
	if err := b.store.CreateSettings(ctx, models.DefaultSettings(userID)); err != nil {
		return "", false, fmt.Errorf("failed to create settings: %w", err)
	}

	return userID, true, nil
}
