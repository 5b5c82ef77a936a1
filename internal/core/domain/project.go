// Package domain contains the core domain models for the artifact packaging engine.
package domain

import "path/filepath"

// ArchiveSuffix is appended to a project name to form its archive filename.
const ArchiveSuffix = "-jvm.jar"

// Project represents a single build unit: a named output directory, the
// classpath it needs at runtime, its resource directories and, for
// executable projects, a main class.
type Project struct {
	// Name uniquely identifies the project within a workspace.
	Name InternedString

	// OutDir is the root directory for everything derived from this
	// project: compiled classes, the archive and the cache marker.
	// It is also the join key by which other projects reference this
	// one from their classpath.
	OutDir string

	// Classpath lists the filesystem paths the project needs at runtime.
	// Each entry is either another project's output directory, a plain
	// directory of pre-compiled classes, or a pre-built archive file.
	Classpath []string

	// Resources lists directories whose contents are bundled into the
	// archive alongside the compiled classes. Missing directories are
	// silently skipped.
	Resources []string

	// MainClass is the fully qualified runtime entry point.
	// Empty for library projects.
	MainClass string
}

// Executable reports whether the project declares a runtime entry point.
func (p *Project) Executable() bool {
	return p.MainClass != ""
}

// ArchivePath returns the fixed path of the project's archive.
// The filename is derived solely from the project name.
func (p *Project) ArchivePath() string {
	return filepath.Join(p.OutDir, p.Name.String()+ArchiveSuffix)
}
