package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/config"
	"cargo-route-service/internal/domain"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// catalogtool initializes the sqlite catalog database and seeds it with
// locations, either from a JSON file or from the builtin Stanton set.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("CATALOG_DB_PATH", "data/catalog.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	locations, err := loadSeed(os.Getenv("SEED_PATH"))
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Initializing catalog schema...")
	if err := catalog.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding catalog...")
	if err := catalog.SeedLocations(db, locations); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete. path=%s locations=%d", dbPath, len(locations))
}

// loadSeed reads locations from seedPath when set, otherwise returns the
// builtin Stanton catalog.
func loadSeed(seedPath string) ([]domain.Location, error) {
	if seedPath == "" {
		return catalog.StantonLocations(), nil
	}
	return catalog.NewJSONSource(seedPath).Load(context.Background())
}
