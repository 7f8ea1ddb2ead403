package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"warehouse-picker-service/internal/adapters/repositories"
	"warehouse-picker-service/internal/config"
	"warehouse-picker-service/internal/platform/db"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")
	if err := initAndSeed(context.Background(), conn, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSQLSchema(ctx, conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding database from %s...", seedPath)
	if err := repositories.SeedSQLFromFile(ctx, conn, seedPath); err != nil {
		return err
	}
	log.Println("Seeding complete.")

	return nil
}
