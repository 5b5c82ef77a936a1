package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectAlreadyExists is returned when attempting to add a project with a name that already exists.
	ErrProjectAlreadyExists = zerr.New("project already exists")

	// ErrOutputDirConflict is returned when two projects declare the same output directory.
	ErrOutputDirConflict = zerr.New("output directory already claimed by another project")

	// ErrProjectNotFound is returned when a requested project is not found in the workspace.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrCycleDetected is returned when the classpath-derived project graph contains a cycle.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrInvalidProgram is returned when a program descriptor does not match name:main-class.
	ErrInvalidProgram = zerr.New("invalid program descriptor")

	// ErrArchiveExists is returned when an archive file is already present at create time.
	// This indicates a concurrent or inconsistent invocation.
	ErrArchiveExists = zerr.New("archive already exists at create time")
)
