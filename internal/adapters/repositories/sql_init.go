package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres schema for the shared places catalog.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		rating DOUBLE PRECISION NOT NULL,
		visit_duration_minutes DOUBLE PRECISION NOT NULL
	);
	`

	if _, err := tx.ExecContext(ctx, createPlacesQuery); err != nil {
		return fmt.Errorf("init postgres schema: create places table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// Populate the Postgres catalog with place data from a JSON file.
// Reuses the PlaceSeed format accepted by the SQLite seeder.
func SeedPostgresFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed postgres places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed postgres places: parse json: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed postgres places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO places (place_id, name, lat, lon, rating, visit_duration_minutes)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (place_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		rating = EXCLUDED.rating,
		visit_duration_minutes = EXCLUDED.visit_duration_minutes;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed postgres places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range data {
		id := strings.TrimSpace(p.PlaceID)
		if id == "" {
			return fmt.Errorf("seed postgres places: item at index %d: place_id cannot be empty", i+1)
		}

		if _, err := stmt.ExecContext(ctx, id, p.Name, p.Lat, p.Lon, p.Rating, p.VisitDurationMinutes); err != nil {
			return fmt.Errorf("seed postgres places: insert place_id=%q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres places: commit tx: %w", err)
	}

	return nil
}
