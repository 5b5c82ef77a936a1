package packager_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/adapters/fs"
	"go.trai.ch/crate/internal/adapters/marker"
	"go.trai.ch/crate/internal/adapters/report"
	"go.trai.ch/crate/internal/adapters/script"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/core/ports/mocks"
	"go.trai.ch/crate/internal/engine/packager"
	"go.uber.org/mock/gomock"
)

func newPackager(t *testing.T, reporter ports.Reporter) *packager.Packager {
	t.Helper()
	return packager.New(
		marker.NewStore(),
		fs.NewFingerprinter(fs.NewWalker()),
		script.NewWriter(),
		noopLogger{},
		reporter,
	)
}

func TestPackager_PackArchives_ReportsOutcomes(t *testing.T) {
	f := newFixture(t)
	compiled := f.addProject("core", "")
	f.compile(compiled, "ccc", map[string]string{"C.class": "c"})
	f.addProject("pending", "")

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ArchiveBuilt("core", compiled.ArchivePath())
	reporter.EXPECT().ArchiveSkipped("pending")

	pk := newPackager(t, reporter)
	require.NoError(t, pk.PackArchives(f.ws, nil))
}

func TestPackager_PackArchives_SecondRunReportsCached(t *testing.T) {
	f := newFixture(t)
	p := f.addProject("core", "")
	f.compile(p, "ccc", map[string]string{"C.class": "c"})

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().ArchiveBuilt("core", p.ArchivePath())
	reporter.EXPECT().ArchiveCached("core", p.ArchivePath())

	pk := newPackager(t, reporter)
	require.NoError(t, pk.PackArchives(f.ws, []string{"core"}))
	require.NoError(t, pk.PackArchives(f.ws, []string{"core"}))
}

func TestPackager_PackArchives_UnknownProject(t *testing.T) {
	f := newFixture(t)

	ctrl := gomock.NewController(t)
	pk := newPackager(t, mocks.NewMockReporter(ctrl))
	err := pk.PackArchives(f.ws, []string{"ghost"})
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestPackager_PackDistribution(t *testing.T) {
	f := newFixture(t)
	dep := f.addProject("util", "")
	f.compile(dep, "uuu", map[string]string{"U.class": "u"})

	app := f.addProject("app", "com.example.Main", dep.OutDir)
	f.compile(app, "aaa", map[string]string{"A.class": "a"})

	var out bytes.Buffer
	pk := newPackager(t, report.NewConsole(&out))

	programs := []domain.Program{{Name: "app", MainClass: "com.example.Main"}}
	outRoot := filepath.Join(f.root, "target")
	distDir, err := pk.PackDistribution(f.ws, "app", programs, outRoot)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(outRoot, "app"), distDir)

	require.ElementsMatch(t, []string{"app-jvm.jar", "util-jvm.jar"},
		dirNames(t, filepath.Join(distDir, "lib")))
	require.ElementsMatch(t, []string{"app", "app.bat"},
		dirNames(t, filepath.Join(distDir, "bin")))

	// The distribution root is the run's observable output.
	require.Equal(t, distDir, strings.TrimSpace(out.String()))
}

func TestPackager_PackDistribution_UnknownProject(t *testing.T) {
	f := newFixture(t)

	ctrl := gomock.NewController(t)
	pk := newPackager(t, mocks.NewMockReporter(ctrl))
	_, err := pk.PackDistribution(f.ws, "ghost", nil, "")
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}
