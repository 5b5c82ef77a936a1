package packager

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

// Assembler lays out a self-contained distribution directory from a
// resolved archive list and delegates launcher generation to the script
// writer collaborator.
type Assembler struct {
	scripts ports.ScriptWriter
}

// NewAssembler creates a new Assembler.
func NewAssembler(scripts ports.ScriptWriter) *Assembler {
	return &Assembler{scripts: scripts}
}

// Assemble materializes `<root>/<name>/lib` with every resolved archive
// and, when programs were requested, `<root>/<name>/bin` with one
// launcher per program. Both subdirectories are fully recreated on each
// run, never merged with stale contents. When outRoot is empty the
// distribution lands under the project's own output directory.
func (s *Assembler) Assemble(p *domain.Project, programs []domain.Program, archives []string, outRoot string) (string, error) {
	root := outRoot
	if root == "" {
		root = filepath.Join(p.OutDir, "dist")
	}
	distDir := filepath.Join(root, p.Name.String())
	if err := os.MkdirAll(distDir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create distribution directory"), "path", distDir)
	}

	libDir := filepath.Join(distDir, "lib")
	if err := recreate(libDir); err != nil {
		return "", err
	}
	for _, archive := range archives {
		dst := filepath.Join(libDir, filepath.Base(archive))
		if err := copyPreserving(archive, dst); err != nil {
			return "", err
		}
	}

	// bin is torn down even when no programs were requested, so a re-run
	// with zero programs clears launchers from a previous run.
	binDir := filepath.Join(distDir, "bin")
	if err := os.RemoveAll(binDir); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to clear bin directory"), "path", binDir)
	}
	if len(programs) > 0 {
		if err := os.MkdirAll(binDir, 0o750); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to create bin directory"), "path", binDir)
		}
		if err := s.scripts.WriteScripts(binDir, "", programs); err != nil {
			return "", err
		}
	}

	return distDir, nil
}

func recreate(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear directory"), "path", dir)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}

// copyPreserving copies src to dst keeping the file mode and
// modification time.
func copyPreserving(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat archive"), "path", src)
	}

	in, err := os.Open(src) //nolint:gosec // Paths come from resolved archives
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open archive"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	//nolint:gosec // Destination is inside the freshly created lib directory
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create library copy"), "path", dst)
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to copy archive"), "path", dst)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to preserve timestamps"), "path", dst)
	}
	return nil
}
