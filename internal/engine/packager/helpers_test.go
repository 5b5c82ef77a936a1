package packager_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/fs"
	"go.trai.ch/crate/internal/adapters/marker"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/engine/packager"
)

// noopLogger discards all log output during tests.
type noopLogger struct{}

func (noopLogger) Info(string) {}
func (noopLogger) Warn(string) {}
func (noopLogger) Error(error) {}

// fixture builds workspace layouts under a temp directory.
type fixture struct {
	t    *testing.T
	root string
	ws   *domain.Workspace
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, root: t.TempDir(), ws: domain.NewWorkspace()}
}

func (f *fixture) addProject(name, mainClass string, classpath ...string) domain.Project {
	f.t.Helper()
	p := domain.Project{
		Name:      domain.NewInternedString(name),
		OutDir:    filepath.Join(f.root, name, "out"),
		Classpath: classpath,
		Resources: []string{filepath.Join(f.root, name, "resources")},
		MainClass: mainClass,
	}
	require.NoError(f.t, f.ws.AddProject(&p))
	return p
}

// compile simulates a compiler invocation: it creates the per-invocation
// classes directory and fills it with the given files.
func (f *fixture) compile(p domain.Project, invocation string, files map[string]string) string {
	f.t.Helper()
	dir := filepath.Join(p.OutDir, "incremental", "classes-"+invocation)
	for name, content := range files {
		f.write(filepath.Join(dir, name), content)
	}
	require.NoError(f.t, os.MkdirAll(dir, 0o750))
	return dir
}

func (f *fixture) writeResource(p domain.Project, name, content string) string {
	f.t.Helper()
	path := filepath.Join(p.Resources[0], name)
	f.write(path, content)
	return path
}

func (f *fixture) write(path, content string) {
	f.t.Helper()
	require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(f.t, os.WriteFile(path, []byte(content), 0o644))
}

func newArchiver(t *testing.T) *packager.Archiver {
	t.Helper()
	return packager.NewArchiver(
		marker.NewStore(),
		fs.NewFingerprinter(fs.NewWalker()),
		noopLogger{},
	)
}
