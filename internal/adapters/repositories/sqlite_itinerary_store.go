package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-itinerary-service/internal/domain"
)

// SQLite-backed implementation of the ItineraryStore port.
// Selected places are stored as a JSON document; the itinerary is written
// once and read back whole, so there is nothing to query inside it.
type SqliteItineraryStore struct{ DB *sql.DB }

func NewSqliteItineraryStore(db *sql.DB) *SqliteItineraryStore {
	return &SqliteItineraryStore{DB: db}
}

// Persist a planned itinerary.
func (s *SqliteItineraryStore) Save(ctx context.Context, it domain.Itinerary) error {
	if s.DB == nil {
		return errors.New("itinerary store: DB is nil")
	}

	if it.ItineraryID == "" {
		return errors.New("save itinerary: itinerary_id must not be empty")
	}

	placesJSON, err := json.Marshal(it.Places)
	if err != nil {
		return fmt.Errorf("save itinerary: marshal places: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save itinerary: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO itineraries (
		itinerary_id,
		current_lat,
		current_lon,
		available_minutes,
		total_time_used,
		places_json,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(
		ctx,
		query,
		it.ItineraryID,
		it.CurrentLocation.Lat,
		it.CurrentLocation.Lon,
		it.AvailableMinutes,
		it.TotalTimeUsed,
		string(placesJSON),
		it.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save itinerary: insert itinerary_id=%q: %w", it.ItineraryID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save itinerary: commit: %w", err)
	}

	return nil
}

// Return the most recently planned itineraries, newest first.
func (s *SqliteItineraryStore) List(ctx context.Context, limit int) ([]domain.Itinerary, error) {
	if s.DB == nil {
		return nil, errors.New("itinerary store: DB is nil")
	}

	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT
		itinerary_id,
		current_lat,
		current_lon,
		available_minutes,
		total_time_used,
		places_json,
		created_at
	FROM itineraries
	ORDER BY created_at DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: query itineraries table: %w", err)
	}
	defer rows.Close()

	itineraries := make([]domain.Itinerary, 0, limit)
	for rows.Next() {
		var it domain.Itinerary
		var placesJSON, createdAt string

		err := rows.Scan(
			&it.ItineraryID,
			&it.CurrentLocation.Lat,
			&it.CurrentLocation.Lon,
			&it.AvailableMinutes,
			&it.TotalTimeUsed,
			&placesJSON,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list itineraries: scan row: %w", err)
		}

		if err := json.Unmarshal([]byte(placesJSON), &it.Places); err != nil {
			return nil, fmt.Errorf("list itineraries: unmarshal places for %q: %w", it.ItineraryID, err)
		}

		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("list itineraries: parse created_at for %q: %w", it.ItineraryID, err)
		}
		it.CreatedAt = ts

		itineraries = append(itineraries, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list itineraries: row iteration: %w", err)
	}

	return itineraries, nil
}
