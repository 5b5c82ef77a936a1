// Package packager implements the artifact assembly engine: cache-aware
// archive construction, transitive runtime dependency resolution and
// distribution assembly.
package packager

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// internalOutputDir is the directory under a project's output
	// directory where the compiler drops one subdirectory per invocation.
	internalOutputDir = "incremental"

	// classesDirPrefix names the compiler's per-invocation subdirectories.
	classesDirPrefix = "classes-"

	manifestDirName = "META-INF/"
	manifestName    = "META-INF/MANIFEST.MF"
)

// archiveEpoch pins every entry timestamp so that identical inputs yield
// byte-identical archives regardless of build time. The zip format cannot
// represent instants before 1980.
var archiveEpoch = time.Date(1980, time.February, 1, 0, 0, 0, 0, time.UTC)

// Archiver builds one deterministic archive per project and decides, via
// the cache marker, whether a rebuild is needed at all.
type Archiver struct {
	markers ports.MarkerStore
	prints  ports.Fingerprinter
	logger  ports.Logger
}

// NewArchiver creates a new Archiver.
func NewArchiver(markers ports.MarkerStore, prints ports.Fingerprinter, logger ports.Logger) *Archiver {
	return &Archiver{
		markers: markers,
		prints:  prints,
		logger:  logger,
	}
}

// EnsureArchive builds or validates the archive for the project and
// returns its path, along with whether a build actually happened. An
// empty path means the project has no compiled output yet and no archive
// from a prior run; this is a deliberate skip, not an error.
func (a *Archiver) EnsureArchive(p *domain.Project) (path string, built bool, err error) {
	archivePath := p.ArchivePath()

	classesDir, err := a.findClassesDir(p)
	if err != nil {
		return "", false, err
	}
	if classesDir == "" {
		a.logger.Info("no compiled output for " + p.Name.String() + ", skipping build")
		if fileExists(archivePath) {
			return archivePath, false, nil
		}
		return "", false, nil
	}

	previous, err := a.markers.Read(p.OutDir)
	if err != nil {
		return "", false, err
	}

	fingerprint, err := a.prints.FingerprintDir(classesDir)
	if err != nil {
		return "", false, err
	}

	newCompile := previous == nil ||
		previous.ClassesDir != classesDir ||
		(previous.Fingerprint != "" && previous.Fingerprint != fingerprint)

	switch {
	case newCompile && !emptyDir(classesDir):
		m := domain.CacheMarker{ClassesDir: classesDir, Fingerprint: fingerprint}
		if err := a.markers.Write(p.OutDir, m); err != nil {
			return "", false, err
		}
		if err := a.build(p, classesDir, archivePath); err != nil {
			return "", false, err
		}
		return archivePath, true, nil

	case fileExists(archivePath):
		stale, err := a.resourcesNewerThan(p, archivePath)
		if err != nil {
			return "", false, err
		}
		if stale {
			if err := a.build(p, classesDir, archivePath); err != nil {
				return "", false, err
			}
			return archivePath, true, nil
		}
		return archivePath, false, nil

	default:
		return "", false, nil
	}
}

// findClassesDir locates the compiler's per-invocation classes directory.
// Returns "" when the project has not been compiled yet.
func (a *Archiver) findClassesDir(p *domain.Project) (string, error) {
	root := filepath.Join(p.OutDir, internalOutputDir)
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, "failed to scan compiler output"), "path", root)
	}

	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), classesDirPrefix) {
			return filepath.Join(root, e.Name()), nil
		}
	}
	return "", nil
}

// resourcesNewerThan reports whether any file under the project's resource
// directories has a modification time strictly newer than the archive's.
func (a *Archiver) resourcesNewerThan(p *domain.Project, archivePath string) (bool, error) {
	info, err := os.Stat(archivePath)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat archive"), "path", archivePath)
	}
	builtAt := info.ModTime()

	for _, dir := range p.Resources {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		newer := false
		walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			if fi.ModTime().After(builtAt) {
				newer = true
				return filepath.SkipAll
			}
			return nil
		})
		if walkErr != nil {
			return false, zerr.With(zerr.Wrap(walkErr, "failed to scan resources"), "path", dir)
		}
		if newer {
			return true, nil
		}
	}
	return false, nil
}

// build writes a fresh archive at archivePath from the compiled classes
// and every existing resource directory.
func (a *Archiver) build(p *domain.Project, classesDir, archivePath string) error {
	if err := os.Remove(archivePath); err == nil {
		a.logger.Warn("overwriting existing archive " + archivePath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to delete existing archive"), "path", archivePath)
	}

	// O_EXCL: a file reappearing between delete and create means a
	// concurrent invocation is writing the same archive. Fail instead of
	// truncating its output.
	//nolint:gosec // Path is derived from a configured output directory
	f, err := os.OpenFile(archivePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return zerr.With(zerr.Wrap(domain.ErrArchiveExists, "failed to create archive"), "path", archivePath)
		}
		return zerr.With(zerr.Wrap(err, "failed to create archive"), "path", archivePath)
	}

	zw := zip.NewWriter(f)
	err = a.writeEntries(zw, p, classesDir)
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive"), "path", archivePath)
	}
	return nil
}

func (a *Archiver) writeEntries(zw *zip.Writer, p *domain.Project, classesDir string) error {
	if err := a.writeManifest(zw, p); err != nil {
		return err
	}
	if err := a.addTree(zw, classesDir); err != nil {
		return err
	}
	for _, dir := range p.Resources {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := a.addTree(zw, dir); err != nil {
			return err
		}
	}
	return nil
}

func (a *Archiver) writeManifest(zw *zip.Writer, p *domain.Project) error {
	if err := a.addDirEntry(zw, manifestDirName); err != nil {
		return err
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     manifestName,
		Method:   zip.Deflate,
		Modified: archiveEpoch,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to create manifest entry")
	}

	var b strings.Builder
	b.WriteString("Manifest-Version: 1.0\r\n")
	b.WriteString("Implementation-Title: " + p.Name.String() + "\r\n")
	if p.Executable() {
		b.WriteString("Main-Class: " + p.MainClass + "\r\n")
	}
	b.WriteString("\r\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

// addTree adds one entry per file-system entry under root, in the stable
// pre-order produced by filepath.WalkDir. The root itself is skipped.
func (a *Archiver) addTree(zw *zip.Writer, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		name := filepath.ToSlash(rel)
		if d.IsDir() {
			return a.addDirEntry(zw, name+"/")
		}
		return a.addFileEntry(zw, name, path)
	})
}

func (a *Archiver) addDirEntry(zw *zip.Writer, name string) error {
	_, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Store,
		Modified: archiveEpoch,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory entry"), "entry", name)
	}
	return nil
}

func (a *Archiver) addFileEntry(zw *zip.Writer, name, path string) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: archiveEpoch,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file entry"), "entry", name)
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from walking a configured directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(w, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to compress file"), "path", path)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func emptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	return err != nil || len(entries) == 0
}
