package packager_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/marker"
)

func readEntry(t *testing.T, archivePath, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close() //nolint:errcheck // Test cleanup

	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close() //nolint:errcheck // Test cleanup
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("entry %q not found in %s", name, archivePath)
	return ""
}

func entryNames(t *testing.T, archivePath string) []string {
	t.Helper()
	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close() //nolint:errcheck // Test cleanup

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestArchiver_BuildsArchive(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "com.example.Main")
	f.compile(p, "aaa", map[string]string{"com/example/Main.class": "cafebabe"})
	f.writeResource(p, "application.conf", "port=8080")

	a := newArchiver(t)
	path, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)
	require.Equal(t, filepath.Join(p.OutDir, "app-jvm.jar"), path)

	manifest := readEntry(t, path, "META-INF/MANIFEST.MF")
	require.Contains(t, manifest, "Implementation-Title: app")
	require.Contains(t, manifest, "Main-Class: com.example.Main")

	names := entryNames(t, path)
	require.Contains(t, names, "com/example/Main.class")
	require.Contains(t, names, "com/example/")
	require.Contains(t, names, "application.conf")
}

func TestArchiver_LibraryHasNoMainClass(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("core", "")
	f.compile(p, "aaa", map[string]string{"A.class": "a"})

	a := newArchiver(t)
	path, _, err := a.EnsureArchive(&p)
	require.NoError(t, err)

	manifest := readEntry(t, path, "META-INF/MANIFEST.MF")
	require.NotContains(t, manifest, "Main-Class")
}

func TestArchiver_EntryTimestampsPinned(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")
	f.compile(p, "aaa", map[string]string{"A.class": "a"})

	a := newArchiver(t)
	path, _, err := a.EnsureArchive(&p)
	require.NoError(t, err)

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close() //nolint:errcheck // Test cleanup

	pinned := time.Date(1980, time.February, 1, 0, 0, 0, 0, time.UTC)
	for _, entry := range zr.File {
		require.True(t, entry.Modified.Equal(pinned),
			"entry %q has timestamp %v, expected pinned epoch", entry.Name, entry.Modified)
	}
}

func TestArchiver_SecondRunIsNoOp(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")
	f.compile(p, "aaa", map[string]string{"A.class": "a"})

	a := newArchiver(t)
	path, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)

	firstBytes, err := os.ReadFile(path)
	require.NoError(t, err)
	markerPath := filepath.Join(p.OutDir, marker.Filename)
	firstMarker, err := os.Stat(markerPath)
	require.NoError(t, err)

	// Nothing changed: no rebuild, no marker rewrite.
	path2, built2, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.False(t, built2)
	require.Equal(t, path, path2)

	secondBytes, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, firstBytes, secondBytes)

	secondMarker, err := os.Stat(markerPath)
	require.NoError(t, err)
	require.Equal(t, firstMarker.ModTime(), secondMarker.ModTime())
}

func TestArchiver_Reproducible(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "com.example.Main")
	f.compile(p, "aaa", map[string]string{"com/example/Main.class": "cafebabe"})
	f.writeResource(p, "logback.xml", "<configuration/>")

	a := newArchiver(t)
	path, _, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	firstBytes, err := os.ReadFile(path)
	require.NoError(t, err)

	// Erase everything derived and build again at a later wall-clock time.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Remove(filepath.Join(p.OutDir, marker.Filename)))
	time.Sleep(10 * time.Millisecond)

	_, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)

	secondBytes, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, firstBytes, secondBytes, "archives from identical inputs must be byte-identical")
}

func TestArchiver_RebuildOnNewClassesDir(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")
	first := f.compile(p, "aaa", map[string]string{"A.class": "a"})

	a := newArchiver(t)
	_, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)

	// The compiler produced a fresh invocation directory with identical
	// content; the path change alone must trigger a rebuild.
	require.NoError(t, os.RemoveAll(first))
	f.compile(p, "bbb", map[string]string{"A.class": "a"})

	_, built, err = a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)
}

func TestArchiver_RebuildOnContentMutation(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")
	dir := f.compile(p, "aaa", map[string]string{"A.class": "v1"})

	a := newArchiver(t)
	_, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)

	// Same directory path, mutated content: caught by the fingerprint.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.class"), []byte("v2"), 0o644))

	_, built, err = a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)
}

func TestArchiver_ResourceInvalidation(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")
	f.compile(p, "aaa", map[string]string{"A.class": "a"})
	resource := f.writeResource(p, "app.conf", "x=1")

	a := newArchiver(t)
	path, _, err := a.EnsureArchive(&p)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	builtAt := info.ModTime()

	// Strictly newer than the archive: rebuild.
	future := builtAt.Add(time.Hour)
	require.NoError(t, os.Chtimes(resource, future, future))
	_, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.True(t, built)

	// Equal or older than the archive: no rebuild.
	info, err = os.Stat(path)
	require.NoError(t, err)
	past := info.ModTime().Add(-time.Hour)
	require.NoError(t, os.Chtimes(resource, past, past))
	_, built, err = a.EnsureArchive(&p)
	require.NoError(t, err)
	require.False(t, built)
}

func TestArchiver_SkipWhenNotCompiled(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")

	a := newArchiver(t)
	path, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.False(t, built)
	require.Empty(t, path)
}

func TestArchiver_KeepsPriorArchiveWhenNotCompiled(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")

	// An archive from an earlier run survives even though the compiler
	// output has since been cleaned.
	f.write(p.ArchivePath(), "stale but reportable")

	a := newArchiver(t)
	path, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.False(t, built)
	require.Equal(t, p.ArchivePath(), path)
}

func TestArchiver_EmptyClassesDirSkips(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("app", "")
	f.compile(p, "aaa", nil)

	a := newArchiver(t)
	path, built, err := a.EnsureArchive(&p)
	require.NoError(t, err)
	require.False(t, built)
	require.Empty(t, path)
}
