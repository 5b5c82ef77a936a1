package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Workspace holds the full project graph for one run. Besides lookup by
// name it maintains an adjacency map from output directory to owning
// project, built once and read-only afterwards: a classpath entry that is
// a directory belongs to another project exactly when this map has a hit.
type Workspace struct {
	projects map[InternedString]Project
	byOutDir map[string]InternedString
	order    []InternedString
}

// NewWorkspace creates a new empty Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		projects: make(map[InternedString]Project),
		byOutDir: make(map[string]InternedString),
	}
}

// AddProject adds a project to the workspace.
// It returns an error if the name or the output directory is already taken.
func (w *Workspace) AddProject(p *Project) error {
	if _, exists := w.projects[p.Name]; exists {
		return zerr.With(zerr.Wrap(ErrProjectAlreadyExists, "failed to add project"), "project", p.Name.String())
	}
	if owner, exists := w.byOutDir[p.OutDir]; exists {
		err := zerr.With(zerr.Wrap(ErrOutputDirConflict, "failed to add project"), "project", p.Name.String())
		err = zerr.With(err, "claimed_by", owner.String())
		return zerr.With(err, "out_dir", p.OutDir)
	}
	w.projects[p.Name] = *p
	w.byOutDir[p.OutDir] = p.Name
	w.order = append(w.order, p.Name)
	return nil
}

// Project returns the project with the given name.
func (w *Workspace) Project(name string) (Project, error) {
	p, ok := w.projects[NewInternedString(name)]
	if !ok {
		return Project{}, zerr.With(zerr.Wrap(ErrProjectNotFound, "unknown project"), "project", name)
	}
	return p, nil
}

// ByOutputDir returns the project owning the given output directory.
// A miss means the directory is an external classes directory that is not
// tracked as a project.
func (w *Workspace) ByOutputDir(dir string) (Project, bool) {
	name, ok := w.byOutDir[dir]
	if !ok {
		return Project{}, false
	}
	return w.projects[name], true
}

// Len returns the number of projects in the workspace.
func (w *Workspace) Len() int {
	return len(w.projects)
}

// All returns an iterator that yields projects in the order they were added.
func (w *Workspace) All() iter.Seq[Project] {
	return func(yield func(Project) bool) {
		for _, name := range w.order {
			if !yield(w.projects[name]) {
				return
			}
		}
	}
}
