package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"warehouse-picker-service/internal/domain"
)

// SQLite-backed implementation of the LocationRepository port.
type SqliteLocationRepository struct{ DB *sql.DB }

func NewSqliteLocationRepository(db *sql.DB) *SqliteLocationRepository {
	return &SqliteLocationRepository{DB: db}
}

// Return all locations stored in the database, in catalog order.
func (s *SqliteLocationRepository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite location repository: DB is nil")
	}

	query := `
	SELECT
		name,
		x,
		y
	FROM locations
	ORDER BY position, name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	return scanLocations(rows)
}

func scanLocations(rows *sql.Rows) ([]*domain.Location, error) {
	locations := make([]*domain.Location, 0, 16)
	for rows.Next() {
		var name string
		var x, y float64
		if err := rows.Scan(&name, &x, &y); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, domain.NewLocation(name, x, y))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}
