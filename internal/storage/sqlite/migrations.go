package sqlite

import "database/sql"

// schema sets up the tables on startup.
// snapshots holds at most one row; its presence means Save has succeeded at
// least once, which is how an empty saved list is told apart from no save.
const schema = `
CREATE TABLE IF NOT EXISTS meals (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL CHECK (name <> ''),
    photo BLOB,
    rating INTEGER NOT NULL CHECK (rating BETWEEN 0 AND 5)
);

CREATE TABLE IF NOT EXISTS snapshots (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    meal_count INTEGER NOT NULL,
    saved_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
