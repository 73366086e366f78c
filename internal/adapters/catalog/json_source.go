package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cargo-route-service/internal/domain"
)

// JSONSource loads the catalog from a locations JSON file.
type JSONSource struct {
	Path string
}

func NewJSONSource(path string) *JSONSource {
	return &JSONSource{Path: path}
}

// LocationRecord is the on-disk shape of one catalog entry. It is shared
// by the JSON source and the catalogtool seed path.
type LocationRecord struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Parent string  `json:"parent,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
}

func (s *JSONSource) Load(ctx context.Context) ([]domain.Location, error) {
	bytes, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog json: read %q: %w", s.Path, err)
	}

	var records []LocationRecord
	if err := json.Unmarshal(bytes, &records); err != nil {
		return nil, fmt.Errorf("load catalog json: parse %q: %w", s.Path, err)
	}

	return recordsToLocations(records)
}

func recordsToLocations(records []LocationRecord) ([]domain.Location, error) {
	locations := make([]domain.Location, 0, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, fmt.Errorf("load catalog: record #%d: name must be non-empty", i+1)
		}

		kind := domain.LocationKind(strings.TrimSpace(rec.Kind))
		if kind == "" {
			kind = domain.KindOther
		}

		locations = append(locations, domain.Location{
			Name:        name,
			Kind:        kind,
			Parent:      strings.TrimSpace(rec.Parent),
			Coordinates: domain.Coordinates{X: rec.X, Y: rec.Y, Z: rec.Z},
		})
	}

	return locations, nil
}
