package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBPath         string
	DatabaseURL    string
	SeedPath       string
	RedisURL       string
	RouteCacheTTL  time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:        Get("PORT", "8080"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedPath:    Get("SEED_PATH", "data/seeds/locations.json"),
		RedisURL:    strings.TrimSpace(os.Getenv("REDIS_URL")),
	}

	ttl, err := time.ParseDuration(Get("ROUTE_CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("config: ROUTE_CACHE_TTL: %w", err)
	}
	cfg.RouteCacheTTL = ttl

	rps, err := strconv.ParseFloat(Get("RATE_LIMIT_RPS", "0"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_RPS: %w", err)
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(Get("RATE_LIMIT_BURST", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_BURST: %w", err)
	}
	if burst < 1 {
		return Config{}, fmt.Errorf("config: RATE_LIMIT_BURST must be >= 1, got %d", burst)
	}
	cfg.RateLimitBurst = burst

	return cfg, nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
