package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/farmledger/server/internal/models"
)

var goalColumns = []string{
	"id", "user_id", "target_revenue", "target_profit", "deadline", "created_at",
}

// CreateGoal persists a new goal, generating its ID and creation time.
// Older goals are never touched; the newest one supersedes them.
func (s *SQLiteStore) CreateGoal(ctx context.Context, goal *models.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}
	goal.CreatedAt = time.Now().Unix()

	query, args, err := qb.Insert("goals").
		Columns(goalColumns...).
		Values(
			goal.ID, goal.UserID, goal.TargetRevenue, goal.TargetProfit,
			goal.Deadline, goal.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build goal insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	return nil
}

// LatestGoal returns the most-recently-created goal for a user identifier,
// or (nil, nil) if none exists. Creation-time ties fall back to rowid so
// the "current" goal stays deterministic.
func (s *SQLiteStore) LatestGoal(ctx context.Context, userID string) (*models.Goal, error) {
	query, args, err := qb.Select(goalColumns...).
		From("goals").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "rowid DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build goal query: %w", err)
	}

	goal := &models.Goal{}
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&goal.ID,
		&goal.UserID,
		&goal.TargetRevenue,
		&goal.TargetProfit,
		&goal.Deadline,
		&goal.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil // No goal set
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest goal: %w", err)
	}

	return goal, nil
}
