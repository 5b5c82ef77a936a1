// Package wiring registers all Graft nodes for the application.
//
// graft.AssertDepsValid cannot check this graph: it infers dependency IDs
// from the package name of the interface passed to Dep[T], so every node
// resolving a ports interface would need the ID "ports".
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/crate/internal/adapters/config"
	_ "go.trai.ch/crate/internal/adapters/fs"
	_ "go.trai.ch/crate/internal/adapters/logger"
	_ "go.trai.ch/crate/internal/adapters/marker"
	_ "go.trai.ch/crate/internal/adapters/report"
	_ "go.trai.ch/crate/internal/adapters/script"
	// Register app and engine nodes.
	_ "go.trai.ch/crate/internal/app"
	_ "go.trai.ch/crate/internal/engine/packager"
)
