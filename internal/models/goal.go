package models

// Goal is a revenue/profit target with a deadline.
// Goals are never updated or deleted in place: a newly created goal
// supersedes older ones, which remain as inert history. Only the
// most-recently-created goal is ever read.
type Goal struct {
	// ID is the unique identifier for the goal (UUID format).
	ID string `json:"id"`

	// UserID is the opaque device identifier owning this goal.
	UserID string `json:"user_id"`

	// TargetRevenue and TargetProfit are the amounts to reach.
	TargetRevenue float64 `json:"target_revenue"`
	TargetProfit  float64 `json:"target_profit"`

	// Deadline is a calendar date in YYYY-MM-DD form.
	Deadline string `json:"deadline"`

	// CreatedAt is the Unix timestamp when the goal was set.
	CreatedAt int64 `json:"created_at"`
}
