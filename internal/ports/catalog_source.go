package ports

import (
	"context"

	"cargo-route-service/internal/domain"
)

// Contract for loading the full location set from a backing store.
// Sources are read on startup and on explicit reload; the loaded set is
// turned into an immutable snapshot before any request can observe it.
type CatalogSource interface {
	Load(ctx context.Context) ([]domain.Location, error)
}
