// Package sqlite reads drivers and trips from a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/tripreport/internal/models"
	"github.com/mmynk/tripreport/internal/parser"
	"github.com/mmynk/tripreport/internal/source"
	"github.com/mmynk/tripreport/internal/storage"
)

// Ensure SQLiteStore implements storage.Source
var _ storage.Source = (*SQLiteStore)(nil)

// Ensure TableParser implements parser.Parser
var _ parser.Parser = (*TableParser)(nil)

// SQLiteStore gives access to a trip database.
type SQLiteStore struct {
	db *sql.DB
}

// New opens the existing database at dbPath and makes sure the expected
// tables exist.
func New(dbPath string) (*SQLiteStore, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("database: %w", source.ErrFileNotFound)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Parser returns a parser over the drivers and trips tables.
func (s *SQLiteStore) Parser(opts parser.Options) parser.Parser {
	return &TableParser{db: s.db, opts: opts}
}

// TableParser admits rows of the drivers and trips tables, in id order.
// A malformed row aborts the parse; its id is reported as the line.
type TableParser struct {
	db   *sql.DB
	opts parser.Options
}

// Parse reads all drivers, then all trips.
func (p *TableParser) Parse(ctx context.Context) (*models.DriverSet, []models.Trip, error) {
	a := parser.NewAdmitter(p.opts)

	if err := p.readDrivers(ctx, a); err != nil {
		return nil, nil, err
	}
	if err := p.readTrips(ctx, a); err != nil {
		return nil, nil, err
	}

	drivers, trips := a.Results()
	return drivers, trips, nil
}

func (p *TableParser) readDrivers(ctx context.Context, a *parser.Admitter) error {
	rows, err := p.db.QueryContext(ctx, "SELECT id, name FROM drivers ORDER BY id")
	if err != nil {
		return fmt.Errorf("failed to get drivers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("failed to scan driver: %w", err)
		}
		a.Line(parser.KindDriver)
		if name == "" {
			return a.Malformed(&parser.MalformedRecordError{
				Line:    id,
				Command: parser.CommandDriver,
				Err:     fmt.Errorf("driver name: %w", models.ErrMissingField),
			})
		}
		a.AddDriver(name)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate drivers: %w", err)
	}
	return nil
}

func (p *TableParser) readTrips(ctx context.Context, a *parser.Admitter) error {
	rows, err := p.db.QueryContext(ctx,
		"SELECT id, driver, start_time, stop_time, miles FROM trips ORDER BY id",
	)
	if err != nil {
		return fmt.Errorf("failed to get trips: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                        int
			driver, start, stop, miles string
		)
		if err := rows.Scan(&id, &driver, &start, &stop, &miles); err != nil {
			return fmt.Errorf("failed to scan trip: %w", err)
		}
		a.Line(parser.KindTrip)

		trip, err := models.NewTripFromStrings(driver, start, stop, miles)
		if err != nil {
			return a.Malformed(&parser.MalformedRecordError{
				Line:    id,
				Command: parser.CommandTrip,
				Err:     err,
			})
		}
		a.AddTrip(trip)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate trips: %w", err)
	}
	return nil
}
