package ports

import "go.trai.ch/crate/internal/core/domain"

// MarkerStore defines the interface for persisting the per-project cache marker.
//
//go:generate mockgen -source=marker_store.go -destination=mocks/mock_marker_store.go -package=mocks
type MarkerStore interface {
	// Read retrieves the cache marker for the project with the given output directory.
	// Returns nil, nil if no marker has been written yet.
	Read(outDir string) (*domain.CacheMarker, error)

	// Write persists the cache marker, replacing any previous one.
	Write(outDir string, marker domain.CacheMarker) error
}
