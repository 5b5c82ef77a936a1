// Package marker persists the per-project cache marker as a side file
// under the project's output directory.
package marker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the marker file name under a project's output directory.
const Filename = ".previous-classes-directory"

var _ ports.MarkerStore = (*Store)(nil)

// Store implements ports.MarkerStore using a plain UTF-8 text file.
// The first line holds the absolute path of the compiled-classes directory
// used for the current archive; the second line, when present, holds its
// content fingerprint. Files written by older versions carry only the
// path line and are still readable.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read retrieves the cache marker for the given output directory.
// Returns nil, nil if no marker file exists.
func (s *Store) Read(outDir string) (*domain.CacheMarker, error) {
	path := filepath.Join(outDir, Filename)

	//nolint:gosec // Path is derived from a configured output directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache marker"), "path", path)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	m := &domain.CacheMarker{ClassesDir: strings.TrimSpace(lines[0])}
	if len(lines) > 1 {
		m.Fingerprint = strings.TrimSpace(lines[1])
	}
	return m, nil
}

// Write persists the cache marker, truncating and rewriting the file.
func (s *Store) Write(outDir string, m domain.CacheMarker) error {
	path := filepath.Join(outDir, Filename)

	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", outDir)
	}

	content := m.ClassesDir + "\n"
	if m.Fingerprint != "" {
		content += m.Fingerprint + "\n"
	}

	//nolint:gosec // Path is derived from a configured output directory
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache marker"), "path", path)
	}
	return nil
}
