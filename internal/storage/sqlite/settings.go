package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/farmledger/server/internal/models"
	"github.com/farmledger/server/internal/storage"
)

var settingsColumns = []string{
	"user_id", "currency", "app_name", "weight_unit", "volume_unit",
	"created_at", "updated_at",
}

// GetSettings retrieves the settings record for a user identifier.
// Returns (nil, nil) if the identifier has never been bootstrapped.
func (s *SQLiteStore) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	query, args, err := qb.Select(settingsColumns...).
		From("user_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build settings query: %w", err)
	}

	settings := &models.UserSettings{}
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&settings.UserID,
		&settings.Currency,
		&settings.AppName,
		&settings.Units.Weight,
		&settings.Units.Volume,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Settings not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// CreateSettings inserts a new settings record, populating timestamps.
func (s *SQLiteStore) CreateSettings(ctx context.Context, settings *models.UserSettings) error {
	now := time.Now().Unix()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	query, args, err := qb.Insert("user_settings").
		Columns(settingsColumns...).
		Values(
			settings.UserID, settings.Currency, settings.AppName,
			settings.Units.Weight, settings.Units.Volume,
			settings.CreatedAt, settings.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build settings insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	return nil
}

// UpdateSettings replaces the mutable settings fields for an existing
// record. Returns storage.ErrNotFound if the user was never bootstrapped.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, settings *models.UserSettings) error {
	settings.UpdatedAt = time.Now().Unix()

	query, args, err := qb.Update("user_settings").
		Set("currency", settings.Currency).
		Set("app_name", settings.AppName).
		Set("weight_unit", settings.Units.Weight).
		Set("volume_unit", settings.Units.Volume).
		Set("updated_at", settings.UpdatedAt).
		Where(sq.Eq{"user_id": settings.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build settings update: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check settings update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	// Re-read created_at so the caller gets the full record back.
	stored, err := s.GetSettings(ctx, settings.UserID)
	if err != nil {
		return err
	}
	if stored == nil {
		return storage.ErrNotFound
	}
	settings.CreatedAt = stored.CreatedAt

	return nil
}
