package cache

import (
	"context"
	"testing"
	"time"

	"trip-itinerary-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

type countingRepo struct {
	places []domain.Place
	calls  int
}

func (c *countingRepo) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	c.calls++
	return c.places, nil
}

func testPlaces() []domain.Place {
	return []domain.Place{
		{
			PlaceID:              "p1",
			Name:                 "Lalbagh Botanical Garden",
			Location:             domain.Location{Lat: 12.9507, Lon: 77.5848},
			Rating:               4.5,
			VisitDurationMinutes: 90,
		},
		{
			PlaceID:              "p2",
			Name:                 "Cubbon Park",
			Location:             domain.Location{Lat: 12.9763, Lon: 77.5929},
			Rating:               4.4,
			VisitDurationMinutes: 60,
		},
	}
}

func TestRedisPlaceCacheMissThenHit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := &countingRepo{places: testPlaces()}

	cached, err := NewRedisPlaceCache(rdb, repo, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()

	first, err := cached.ListPlaces(ctx)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("first call returned %d places, want 2", len(first))
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 repository call after miss, got %d", repo.calls)
	}

	second, err := cached.ListPlaces(ctx)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if repo.calls != 1 {
		t.Errorf("second call should hit the cache, repository calls = %d", repo.calls)
	}
	if len(second) != 2 || second[0].PlaceID != "p1" || second[1].PlaceID != "p2" {
		t.Errorf("cached snapshot differs: %+v", second)
	}
}

func TestRedisPlaceCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := &countingRepo{places: testPlaces()}

	cached, err := NewRedisPlaceCache(rdb, repo, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if _, err := cached.ListPlaces(ctx); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := cached.ListPlaces(ctx); err != nil {
		t.Fatalf("after expiry: %v", err)
	}
	if repo.calls != 2 {
		t.Errorf("expired snapshot should refetch, repository calls = %d, want 2", repo.calls)
	}
}

func TestRedisPlaceCacheInvalidate(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := &countingRepo{places: testPlaces()}

	cached, err := NewRedisPlaceCache(rdb, repo, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if _, err := cached.ListPlaces(ctx); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	if err := cached.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	if _, err := cached.ListPlaces(ctx); err != nil {
		t.Fatalf("after invalidate: %v", err)
	}
	if repo.calls != 2 {
		t.Errorf("invalidated snapshot should refetch, repository calls = %d, want 2", repo.calls)
	}
}

func TestRedisPlaceCacheFallsBackWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := &countingRepo{places: testPlaces()}

	cached, err := NewRedisPlaceCache(rdb, repo, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mr.Close()

	places, err := cached.ListPlaces(context.Background())
	if err != nil {
		t.Fatalf("cache must degrade to the repository when redis is down: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("fallback returned %d places, want 2", len(places))
	}
	if repo.calls != 1 {
		t.Errorf("repository calls = %d, want 1", repo.calls)
	}
}
