package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"warehouse-picker-service/internal/domain"
	"warehouse-picker-service/internal/platform/obs"
)

// SQLLocationRepository is a Postgres-backed LocationRepository (pgx stdlib driver).
type SQLLocationRepository struct{ DB *sql.DB }

func NewSQLLocationRepository(db *sql.DB) *SQLLocationRepository {
	return &SQLLocationRepository{DB: db}
}

func (s *SQLLocationRepository) ListLocations(ctx context.Context) (_ []*domain.Location, err error) {
	defer obs.Time(ctx, "locations.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql location repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT name, x, y
	FROM locations
	ORDER BY position, name;
	`)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

// Initialize the Postgres schema.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init sql schema: DB is nil")
	}

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS locations (
			name TEXT PRIMARY KEY,
			x DOUBLE PRECISION NOT NULL,
			y DOUBLE PRECISION NOT NULL,
			position INTEGER NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_locations_position
		ON locations(position);
		`,
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init sql schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init sql schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init sql schema: commit tx: %w", err)
	}
	return nil
}

// Replace the Postgres catalog with the contents of a JSON or YAML seed file.
func SeedSQLFromFile(ctx context.Context, db *sql.DB, path string) error {
	if db == nil {
		return errors.New("seed sql locations: DB is nil")
	}

	seeds, err := LoadSeeds(path)
	if err != nil {
		return fmt.Errorf("seed sql locations: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed sql locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations;`); err != nil {
		return fmt.Errorf("seed sql locations: clear catalog: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO locations (name, x, y, position)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (name) DO UPDATE
	SET x = EXCLUDED.x,
		y = EXCLUDED.y,
		position = EXCLUDED.position;
	`)
	if err != nil {
		return fmt.Errorf("seed sql locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range seeds {
		if _, err := stmt.ExecContext(ctx, s.Name, s.X, s.Y, i); err != nil {
			return fmt.Errorf("seed sql locations: insert name=%q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed sql locations: commit tx: %w", err)
	}
	return nil
}
