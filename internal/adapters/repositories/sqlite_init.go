package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		name TEXT PRIMARY KEY,
		x REAL NOT NULL,
		y REAL NOT NULL,
		position INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_locations_position
	ON locations(position);
	`

	statements := []string{
		createLocationsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with location data from a JSON or YAML file.
func SeedFromFile(db *sql.DB, path string) error {
	seeds, err := LoadSeeds(path)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	return SeedLocationRows(db, seeds)
}

// Replace the catalog with seed rows; the slice index becomes the catalog position.
// Rows missing from seeds are removed in the same transaction.
func SeedLocationRows(db *sql.DB, seeds []LocationSeed) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM locations;`); err != nil {
		return fmt.Errorf("seed locations: clear catalog: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO locations (
		name,
		x,
		y,
		position
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range seeds {
		if _, err := stmt.Exec(s.Name, s.X, s.Y, i); err != nil {
			return fmt.Errorf("seed locations: insert name=%q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
