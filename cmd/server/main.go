package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/config"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"

	"github.com/joho/godotenv"
	redis "github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, optionally Redis) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo catalog data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	var repo ports.PlaceRepository = repositories.NewSqlitePlaceRepository(db)

	// The catalog cache is optional; planning works straight off SQLite
	// when no Redis is configured.
	if redisURL := strings.TrimSpace(os.Getenv("REDIS_URL")); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}

		cached, err := cache.NewRedisPlaceCache(redis.NewClient(opt), repo, time.Hour)
		if err != nil {
			log.Fatal(err)
		}
		repo = cached
		log.Println("Redis place cache enabled")
	}

	store := repositories.NewSqliteItineraryStore(db)

	plannerCfg := services.PlannerConfig{
		AverageSpeedKmh: config.GetFloat("AVERAGE_SPEED_KMH", 30),
		RatingWeight:    config.GetFloat("RATING_WEIGHT", 10),
		DistanceWeight:  config.GetFloat("DISTANCE_WEIGHT", 2),
		ValidateInputs:  config.GetBool("PLANNER_VALIDATE", true),
	}

	router := api.NewRouter(repo, store, plannerCfg)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
