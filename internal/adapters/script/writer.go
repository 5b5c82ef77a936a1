// Package script implements the launcher script collaborator. It writes
// one executable entry-point script per program into a distribution's bin
// directory, resolving the lib directory relative to the script location.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScriptWriter = (*Writer)(nil)

// Writer generates POSIX shell and Windows batch launchers.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteScripts writes a launcher per program into binDir.
func (w *Writer) WriteScripts(binDir string, classpathPrefix string, programs []domain.Program) error {
	for _, p := range programs {
		if err := w.writeShell(binDir, classpathPrefix, p); err != nil {
			return err
		}
		if err := w.writeBatch(binDir, classpathPrefix, p); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeShell(binDir, classpathPrefix string, p domain.Program) error {
	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString(`DIR="$(cd "$(dirname "$0")" && pwd)"` + "\n")
	fmt.Fprintf(&b, "exec java -cp %q %s \"$@\"\n", classpathPrefix+`$DIR/../lib/*`, p.MainClass)

	path := filepath.Join(binDir, p.Name)
	//nolint:gosec // Launcher scripts must be executable
	if err := os.WriteFile(path, []byte(b.String()), 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write launcher script"), "path", path)
	}
	return nil
}

func (w *Writer) writeBatch(binDir, classpathPrefix string, p domain.Program) error {
	var b strings.Builder
	b.WriteString("@echo off\r\n")
	fmt.Fprintf(&b, "java -cp \"%s%%~dp0..\\lib\\*\" %s %%*\r\n", classpathPrefix, p.MainClass)

	path := filepath.Join(binDir, p.Name+".bat")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write launcher script"), "path", path)
	}
	return nil
}
