package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"

	redis "github.com/redis/go-redis/v9"
)

const placesCatalogKey = "places:catalog"

// RedisPlaceCache decorates a PlaceRepository with a Redis-backed snapshot of
// the full candidate catalog.
//
// The cache is best-effort: a Redis failure falls through to the underlying
// repository, and a failed write only logs. Planning must keep working when
// Redis is down.
type RedisPlaceCache struct {
	rdb  *redis.Client
	next ports.PlaceRepository
	ttl  time.Duration
}

func NewRedisPlaceCache(rdb *redis.Client, next ports.PlaceRepository, ttl time.Duration) (*RedisPlaceCache, error) {
	if rdb == nil {
		return nil, errors.New("redis place cache: client is nil")
	}
	if next == nil {
		return nil, errors.New("redis place cache: underlying repository is nil")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &RedisPlaceCache{rdb: rdb, next: next, ttl: ttl}, nil
}

// ListPlaces serves the catalog snapshot from Redis when present, otherwise
// delegates to the underlying repository and stores the result.
func (c *RedisPlaceCache) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	payload, err := c.rdb.Get(ctx, placesCatalogKey).Bytes()
	if err == nil {
		var places []domain.Place
		if uerr := json.Unmarshal(payload, &places); uerr == nil {
			return places, nil
		}
		// A corrupt snapshot is treated as a miss and overwritten below.
		log.Printf("redis place cache: corrupt snapshot, refetching key=%s", placesCatalogKey)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("redis place cache: get failed, falling back err=%v", err)
	}

	places, err := c.next.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("redis place cache: list places fallback: %w", err)
	}

	data, err := json.Marshal(places)
	if err != nil {
		return nil, fmt.Errorf("redis place cache: marshal snapshot: %w", err)
	}

	if err := c.rdb.Set(ctx, placesCatalogKey, data, c.ttl).Err(); err != nil {
		log.Printf("redis place cache: set failed key=%s err=%v", placesCatalogKey, err)
	}

	return places, nil
}

// Invalidate drops the cached snapshot, forcing the next read through.
func (c *RedisPlaceCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, placesCatalogKey).Err(); err != nil {
		return fmt.Errorf("redis place cache: invalidate: %w", err)
	}
	return nil
}
