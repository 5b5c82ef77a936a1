// Package config provides the workspace configuration loader for crate.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Workspace, error) {
	path := filepath.Join(cwd, l.Filename)
	return Load(path)
}

// Load reads a configuration file from the given path and returns a domain.Workspace.
// All relative paths in the file are resolved against the file's directory,
// so that classpath entries and output directories compare by identity.
func Load(path string) (*domain.Workspace, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var cratefile Cratefile
	if err := yaml.Unmarshal(data, &cratefile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	base := filepath.Dir(path)
	w := domain.NewWorkspace()

	// Sort names so that workspace iteration order is stable across runs.
	names := make([]string, 0, len(cratefile.Projects))
	for name := range cratefile.Projects {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		dto := cratefile.Projects[name]
		if dto.Out == "" {
			return nil, zerr.With(zerr.New("project is missing an output directory"), "project", name)
		}

		project := &domain.Project{
			Name:      domain.NewInternedString(name),
			OutDir:    resolvePath(base, dto.Out),
			Classpath: resolvePaths(base, dto.Classpath),
			Resources: resolvePaths(base, dto.Resources),
			MainClass: dto.MainClass,
		}

		if err := w.AddProject(project); err != nil {
			return nil, err
		}
	}

	return w, nil
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

func resolvePaths(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	res := make([]string, len(paths))
	for i, p := range paths {
		res[i] = resolvePath(base, p)
	}
	return res
}
