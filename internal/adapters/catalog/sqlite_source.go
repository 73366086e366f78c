package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cargo-route-service/internal/domain"
)

// SQLite-backed catalog source. The locations table is initialized and
// seeded by cmd/catalogtool; the server only reads from it.
type SqliteSource struct{ DB *sql.DB }

func NewSqliteSource(db *sql.DB) *SqliteSource {
	return &SqliteSource{DB: db}
}

// Initialize the SQLite catalog schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		name TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		parent TEXT NOT NULL DEFAULT '',
		x REAL NOT NULL,
		y REAL NOT NULL,
		z REAL NOT NULL
	);
	`

	if _, err := db.Exec(createLocationsQuery); err != nil {
		return fmt.Errorf("init schema: create locations table: %w", err)
	}

	return nil
}

// SeedLocations upserts the given location set.
func SeedLocations(db *sql.DB, locations []domain.Location) error {
	if db == nil {
		return errors.New("seed locations: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO locations (
		name,
		kind,
		parent,
		x, y, z
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		c := loc.Coordinates
		if _, err := stmt.Exec(loc.Name, string(loc.Kind), loc.Parent, c.X, c.Y, c.Z); err != nil {
			return fmt.Errorf("seed locations: insert %q: %w", loc.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}

// Return all catalog locations stored in the database.
func (s *SqliteSource) Load(ctx context.Context) ([]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite catalog source: DB is nil")
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
