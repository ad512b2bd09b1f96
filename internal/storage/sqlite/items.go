package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/farmledger/server/internal/models"
	"github.com/farmledger/server/internal/storage"
)

var itemColumns = []string{
	"id", "user_id", "name", "quantity_value", "quantity_unit",
	"buying_price", "selling_price", "created_at", "updated_at",
}

func scanItem(row sq.RowScanner, item *models.Item) error {
	return row.Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.QuantityValue,
		&item.QuantityUnit,
		&item.BuyingPrice,
		&item.SellingPrice,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

// ListItems returns all items for a user identifier, newest-created first.
// Rows created in the same second keep insertion order via rowid.
func (s *SQLiteStore) ListItems(ctx context.Context, userID string) ([]models.Item, error) {
	query, args, err := qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "rowid DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// CreateItem persists a new item, generating its ID and timestamps.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	item.CreatedAt = now
	item.UpdatedAt = now

	query, args, err := qb.Insert("items").
		Columns(itemColumns...).
		Values(
			item.ID, item.UserID, item.Name, item.QuantityValue,
			item.QuantityUnit, item.BuyingPrice, item.SellingPrice,
			item.CreatedAt, item.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// UpdateItem replaces the five mutable fields of the item matching
// (item.ID, item.UserID). Returns storage.ErrNotFound if no row matches
// both; it never touches another user's item.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.Item) error {
	item.UpdatedAt = time.Now().Unix()

	query, args, err := qb.Update("items").
		Set("name", item.Name).
		Set("quantity_value", item.QuantityValue).
		Set("quantity_unit", item.QuantityUnit).
		Set("buying_price", item.BuyingPrice).
		Set("selling_price", item.SellingPrice).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	// Re-read created_at so the caller gets the full record back.
	return s.getItem(ctx, item)
}

func (s *SQLiteStore) getItem(ctx context.Context, item *models.Item) error {
	query, args, err := qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build get query: %w", err)
	}

	err = scanItem(s.db.QueryRowContext(ctx, query, args...), item)
	if err == sql.ErrNoRows {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}
	return nil
}

// DeleteItem permanently removes the item matching (itemID, userID).
// Returns storage.ErrNotFound if no row matches both.
func (s *SQLiteStore) DeleteItem(ctx context.Context, itemID, userID string) error {
	query, args, err := qb.Delete("items").
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
