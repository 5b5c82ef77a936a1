// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/crate/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory and returns the project workspace.
	Load(cwd string) (*domain.Workspace, error)
}
