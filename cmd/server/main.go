package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"cargo-route-service/internal/adapters/catalog"
	"cargo-route-service/internal/api"
	"cargo-route-service/internal/config"
	"cargo-route-service/internal/metrics"
	"cargo-route-service/internal/platform/db"
	"cargo-route-service/internal/ports"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the configured catalog source behind the store, registers
// metrics, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(config.Get("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	source, closer, err := openCatalogSource(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	store := catalog.NewStore(source)
	if err := store.Load(ctx); err != nil {
		log.Fatal(fmt.Errorf("load catalog: %w", err))
	}
	log.Printf("Catalog loaded source=%s locations=%d", cfg.Catalog.Source, store.Snapshot().Len())

	metrics.RegisterDefault()
	router := api.NewRouter(store, cfg)

	log.Printf("Server listening addr=:%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	log.Fatal(srv.ListenAndServe())
}

// openCatalogSource builds the catalog source named by the config. The
// returned closer is non-nil for database-backed sources and must be
// closed after the server stops.
func openCatalogSource(ctx context.Context, cfg *config.Config) (ports.CatalogSource, *sql.DB, error) {
	switch cfg.Catalog.Source {
	case "", "builtin":
		return catalog.NewBuiltinSource(), nil, nil
	case "json":
		return catalog.NewJSONSource(cfg.Catalog.Path), nil, nil
	case "sqlite":
		sqliteDB, err := openSqlite(cfg.Catalog.DatabasePath)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewSqliteSource(sqliteDB), sqliteDB, nil
	case "postgres":
		pgDB, err := db.Open(ctx, cfg.Catalog.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewPostgresSource(pgDB), pgDB, nil
	default:
		return nil, nil, fmt.Errorf("open catalog source: unknown source %q", cfg.Catalog.Source)
	}
}

func openSqlite(path string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog %q: %w", path, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("verify sqlite connection to %q: %w", path, err)
	}

	return sqliteDB, nil
}
