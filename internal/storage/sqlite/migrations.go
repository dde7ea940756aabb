package sqlite

import "database/sql"

// schema describes the tables a trip database must provide.
// Miles are stored as text so no precision is lost to REAL.
// Times use the same H:MM or HH:MM format as the command log.
const schema = `
CREATE TABLE IF NOT EXISTS drivers (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trips (
    id INTEGER PRIMARY KEY,
    driver TEXT NOT NULL,
    start_time TEXT NOT NULL,
    stop_time TEXT NOT NULL,
    miles TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trips_driver ON trips(driver);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
