package identity

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/farmledger/server/internal/storage/sqlite"
)

func newTestBootstrapper(t *testing.T) (*Bootstrapper, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func TestInit_NoCandidate(t *testing.T) {
	b, store := newTestBootstrapper(t)
	ctx := context.Background()

	userID, created, err := b.Init(ctx, "")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !created {
		t.Error("Expected a new identity to be created")
	}
	if _, err := uuid.Parse(userID); err != nil {
		t.Errorf("Expected a UUID identifier, got %q: %v", userID, err)
	}

	settings, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings == nil {
		t.Fatal("Expected a default settings row for the new identity")
	}
}

func TestInit_Idempotent(t *testing.T) {
	b, store := newTestBootstrapper(t)
	ctx := context.Background()

	userID, _, err := b.Init(ctx, "")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	first, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}

	// Re-initializing with a known identifier returns it unchanged and
	// writes nothing.
	again, created, err := b.Init(ctx, userID)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if created {
		t.Error("Expected no new identity for a known identifier")
	}
	if again != userID {
		t.Errorf("Expected identifier %q back, got %q", userID, again)
	}

	second, err := store.GetSettings(ctx, userID)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if second.CreatedAt != first.CreatedAt || second.UpdatedAt != first.UpdatedAt {
		t.Error("Expected settings row to be untouched by re-init")
	}
}

func TestInit_SelfHealing(t *testing.T) {
	b, _ := newTestBootstrapper(t)
	ctx := context.Background()

	// A garbage candidate yields a fresh identity, never an error.
	userID, created, err := b.Init(ctx, "lost-or-garbage-token")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !created {
		t.Error("Expected a new identity for an unknown candidate")
	}
	if userID == "lost-or-garbage-token" {
		t.Error("Expected the unknown candidate to be replaced")
	}
}
