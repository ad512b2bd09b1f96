package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// All tables are scoped by user_id, the opaque per-device identifier;
// there are no cross-user references.
const schema = `
CREATE TABLE IF NOT EXISTS user_settings (
    user_id TEXT PRIMARY KEY,
    currency TEXT NOT NULL DEFAULT 'USD',
    app_name TEXT NOT NULL DEFAULT 'FarmLedger',
    weight_unit TEXT NOT NULL DEFAULT 'kg',
    volume_unit TEXT NOT NULL DEFAULT 'liters',
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    quantity_value REAL NOT NULL,
    quantity_unit TEXT NOT NULL,
    buying_price REAL NOT NULL,
    selling_price REAL NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    target_revenue REAL NOT NULL,
    target_profit REAL NOT NULL,
    deadline TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_user_id ON items(user_id);
CREATE INDEX IF NOT EXISTS idx_goals_user_id ON goals(user_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
