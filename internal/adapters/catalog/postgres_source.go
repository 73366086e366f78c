package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cargo-route-service/internal/domain"
)

// Postgres-backed catalog source for deployments that keep the location
// reference in a shared database. Expects the same locations table shape
// as the SQLite source.
type PostgresSource struct{ DB *sql.DB }

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

func (s *PostgresSource) Load(ctx context.Context) ([]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("postgres catalog source: DB is nil")
	}

	query := `
	SELECT
		name,
		kind,
		parent,
		x, y, z
	FROM locations
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load catalog: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 64)
	for rows.Next() {
		var loc domain.Location
		var kind string
		err := rows.Scan(&loc.Name, &kind, &loc.Parent, &loc.Coordinates.X, &loc.Coordinates.Y, &loc.Coordinates.Z)
		if err != nil {
			return nil, fmt.Errorf("load catalog: scan row: %w", err)
		}
		loc.Kind = domain.LocationKind(kind)
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: row iteration: %w", err)
	}

	return locations, nil
}
