package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"
	"warehouse-picker-service/internal/adapters/cache"
	"warehouse-picker-service/internal/adapters/repositories"
	"warehouse-picker-service/internal/adapters/spatial"
	"warehouse-picker-service/internal/api"
	"warehouse-picker-service/internal/config"
	"warehouse-picker-service/internal/platform/db"
	"warehouse-picker-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, Redis) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	conn, repo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// The spatial index is built once from the catalog loaded at startup.
	locs, err := repo.ListLocations(ctx)
	if err != nil {
		log.Fatal(fmt.Errorf("load catalog: %w", err))
	}
	index := spatial.NewLocationIndex(locs)
	log.Printf("Catalog loaded locations=%d", index.Len())

	deps := api.Deps{
		Repo:           repo,
		Finder:         index,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisRouteCacheFromURL(ctx, cfg.RedisURL, cfg.RouteCacheTTL)
		if err != nil {
			log.Fatal(err)
		}
		defer rc.Close()
		deps.Cache = rc
		log.Printf("Route cache enabled ttl=%s", cfg.RouteCacheTTL)
	}

	router := api.NewRouter(deps)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository prefers Postgres when DATABASE_URL is set and otherwise
// falls back to the local SQLite file, seeding it on startup for local runs.
func openRepository(ctx context.Context, cfg config.Config) (*sql.DB, ports.LocationRepository, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("Using postgres location catalog")
		return conn, repositories.NewSQLLocationRepository(conn), nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}

	if err := initAndSeed(conn, cfg.SeedPath); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	log.Printf("Using sqlite location catalog path=%s", cfg.DBPath)
	return conn, repositories.NewSqliteLocationRepository(conn), nil
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromFile(conn, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
