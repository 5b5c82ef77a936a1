package report

import (
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"

	"go.trai.ch/crate/internal/core/ports"
)

var _ ports.Reporter = (*Recorder)(nil)

// Recorder implements ports.Reporter on a progrock tape, recording one
// vertex per packaged project.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder rendering progress to stderr, keeping stdout
// free for result paths.
func New() *Recorder {
	return NewRecorder(console.NewWriter(os.Stderr))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// ArchiveBuilt records a completed build vertex for the project.
func (r *Recorder) ArchiveBuilt(project string, path string) {
	v := r.vertex(project, "package "+project)
	_, _ = fmt.Fprintln(v.Stdout(), path)
	v.Done(nil)
}

// ArchiveCached records a cache-hit vertex for the project.
func (r *Recorder) ArchiveCached(project string, path string) {
	v := r.vertex(project, "package "+project)
	_, _ = fmt.Fprintln(v.Stdout(), path)
	v.Cached()
	v.Done(nil)
}

// ArchiveSkipped records a vertex for a project without compiled output.
func (r *Recorder) ArchiveSkipped(project string) {
	v := r.vertex(project, "package "+project+" (no compiled output)")
	v.Done(nil)
}

// DistributionAssembled records a vertex for the assembled distribution.
func (r *Recorder) DistributionAssembled(project string, path string) {
	v := r.vertex(project+"/dist", "assemble "+project)
	_, _ = fmt.Fprintln(v.Stdout(), path)
	v.Done(nil)
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (r *Recorder) vertex(id, name string) *progrock.VertexRecorder {
	return r.rec.Vertex(digest.FromString(id), name)
}
