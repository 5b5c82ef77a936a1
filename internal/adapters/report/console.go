// Package report implements the reporting sinks for packaging results.
package report

import (
	"fmt"
	"io"

	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.Reporter = (*Console)(nil)

// Console writes result paths to a writer, one per line. Built and
// existing archives are indistinguishable on purpose: the observable
// output of a pack run is the archive path either way.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// ArchiveBuilt reports a freshly built archive.
func (c *Console) ArchiveBuilt(_ string, path string) {
	_, _ = fmt.Fprintln(c.w, path)
}

// ArchiveCached reports an archive that was already current.
func (c *Console) ArchiveCached(_ string, path string) {
	_, _ = fmt.Fprintln(c.w, path)
}

// ArchiveSkipped reports a project without compiled output. Nothing is
// printed; the skip is visible in the log only.
func (c *Console) ArchiveSkipped(string) {}

// DistributionAssembled reports the distribution root.
func (c *Console) DistributionAssembled(_ string, path string) {
	_, _ = fmt.Fprintln(c.w, path)
}
