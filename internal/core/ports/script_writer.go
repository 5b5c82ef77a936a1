package ports

import "go.trai.ch/crate/internal/core/domain"

// ScriptWriter defines the interface for the launcher script collaborator.
// It writes one executable entry-point script per program into the target
// bin directory; its internal script format is not part of the core.
//
//go:generate mockgen -source=script_writer.go -destination=mocks/mock_script_writer.go -package=mocks
type ScriptWriter interface {
	// WriteScripts writes a launcher for each program into binDir.
	// classpathPrefix is prepended to the generated classpath entries.
	WriteScripts(binDir string, classpathPrefix string, programs []domain.Program) error
}
