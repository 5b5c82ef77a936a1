package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/crate/internal/adapters/report"
)

func TestConsole_PrintsPaths(t *testing.T) {
	var buf bytes.Buffer
	c := report.NewConsole(&buf)

	c.ArchiveBuilt("core", "/build/core/core-jvm.jar")
	c.ArchiveCached("util", "/build/util/util-jvm.jar")
	c.ArchiveSkipped("empty")
	c.DistributionAssembled("app", "/build/app/dist/app")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"/build/core/core-jvm.jar",
		"/build/util/util-jvm.jar",
		"/build/app/dist/app",
	}, lines)
}

func TestDetect_ReporterSelection(t *testing.T) {
	_, ok := report.Detect(true, "").(*report.Recorder)
	require.True(t, ok, "interactive terminal should get progress rendering")

	_, ok = report.Detect(false, "").(*report.Console)
	require.True(t, ok, "non-terminal output should get plain paths")

	_, ok = report.Detect(true, "true").(*report.Console)
	require.True(t, ok, "CI should get plain paths even on a terminal")
}

func TestRecorder_VertexPerProject(t *testing.T) {
	tape := newCountingWriter()
	r := report.NewRecorder(tape)

	r.ArchiveBuilt("core", "/build/core/core-jvm.jar")
	r.ArchiveCached("util", "/build/util/util-jvm.jar")
	r.DistributionAssembled("app", "/build/app/dist/app")

	require.NoError(t, r.Close())
	require.NotZero(t, tape.updates, "expected vertex updates on the tape")
}

// countingWriter is a progrock.Writer that counts status updates.
type countingWriter struct {
	updates int
}

func newCountingWriter() *countingWriter {
	return &countingWriter{}
}

func (w *countingWriter) WriteStatus(*progrock.StatusUpdate) error {
	w.updates++
	return nil
}

func (w *countingWriter) Close() error {
	return nil
}
