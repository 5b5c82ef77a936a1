package packager

import (
	"os"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver computes the flattened, deduplicated list of archive files a
// project needs at runtime, recursing through classpath entries that are
// other projects' output directories.
type Resolver struct {
	archiver *Archiver
}

// NewResolver creates a new Resolver.
func NewResolver(archiver *Archiver) *Resolver {
	return &Resolver{archiver: archiver}
}

// Resolve returns the ordered archive list for the project: its own
// archive first, then pre-built archive classpath entries in classpath
// order, then the depth-first expansion of directory entries that belong
// to other workspace projects. Directory entries without a workspace
// owner are external classes directories and contribute nothing. The
// result contains each path at most once, in first-seen order.
func (r *Resolver) Resolve(p *domain.Project, w *domain.Workspace) ([]string, error) {
	seen := make(map[string]bool)
	visiting := make(map[string]bool)
	var result []string

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	var visit func(p domain.Project, trail []string) error
	visit = func(p domain.Project, trail []string) error {
		if visiting[p.OutDir] {
			return cycleError(trail, p.Name.String())
		}
		visiting[p.OutDir] = true
		trail = append(trail, p.Name.String())

		self, _, err := r.archiver.EnsureArchive(&p)
		if err != nil {
			return err
		}
		if self != "" {
			add(self)
		}

		var deps []domain.Project
		for _, entry := range p.Classpath {
			// A workspace out dir counts as a directory entry even before
			// anything was compiled into it.
			if dep, ok := w.ByOutputDir(entry); ok {
				deps = append(deps, dep)
				continue
			}
			if isDir(entry) {
				// External classes directory, contributes no archive.
				continue
			}
			// Anything else is assumed to be a pre-built archive and
			// passed through unchanged.
			add(entry)
		}

		for _, dep := range deps {
			if err := visit(dep, trail); err != nil {
				return err
			}
		}

		visiting[p.OutDir] = false
		return nil
	}

	if err := visit(*p, nil); err != nil {
		return nil, err
	}
	return result, nil
}

func cycleError(trail []string, repeated string) error {
	start := 0
	for i, name := range trail {
		if name == repeated {
			start = i
			break
		}
	}
	path := strings.Join(append(trail[start:], repeated), " -> ")
	return zerr.With(zerr.Wrap(domain.ErrCycleDetected, "failed to resolve dependencies"), "cycle", path)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
