package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/platform/obs"
)

// SQLPlaceRepository is a Postgres-backed implementation of the
// PlaceRepository port, used when the catalog lives in a shared database
// rather than the local SQLite file.
type SQLPlaceRepository struct{ DB *sql.DB }

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

// Return all candidate places stored in the database.
func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "places.repository.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sql place repository: DB is nil")
	}

	query := `
	SELECT place_id, name, lat, lon, rating, visit_duration_minutes
	FROM places
	ORDER BY place_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.Place, 0, 64)
	for rows.Next() {
		var p domain.Place
		err := rows.Scan(
			&p.PlaceID,
			&p.Name,
			&p.Location.Lat,
			&p.Location.Lon,
			&p.Rating,
			&p.VisitDurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}
