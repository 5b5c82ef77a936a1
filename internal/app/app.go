// Package app implements the application layer for crate.
package app

import (
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/engine/packager"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	packager     *packager.Packager
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, pk *packager.Packager) *App {
	return &App{
		configLoader: loader,
		packager:     pk,
	}
}

// PackArchives builds or validates the archives of the named projects,
// or of every project in the workspace when no names are given.
func (a *App) PackArchives(targetNames []string) error {
	ws, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.packager.PackArchives(ws, targetNames); err != nil {
		return zerr.Wrap(err, "archive packaging failed")
	}

	return nil
}

// PackDistribution assembles a distribution for the named project.
// Program descriptors use the name:mainclass form; outRoot overrides the
// default distribution root when non-empty. The distribution root is
// returned.
func (a *App) PackDistribution(targetName string, programDescriptors []string, outRoot string) (string, error) {
	programs, err := domain.ParsePrograms(programDescriptors)
	if err != nil {
		return "", err
	}

	ws, err := a.configLoader.Load(".")
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}

	distDir, err := a.packager.PackDistribution(ws, targetName, programs, outRoot)
	if err != nil {
		return "", zerr.Wrap(err, "distribution packaging failed")
	}

	return distDir, nil
}
