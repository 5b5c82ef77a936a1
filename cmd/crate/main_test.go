package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/build"
	"go.trai.ch/zerr"
)

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func inDir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(cwd)
	})
}

func TestRun_Pack(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `version: "1"
projects:
  core:
    out: core/out
`
	require.NoError(t, os.WriteFile(tmpDir+"/crate.yaml", []byte(configContent), 0o600))
	inDir(t, tmpDir)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"pack"}, stdout, stderr, graftProvider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_VersionGoesToStdout(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, graftProvider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), build.Version)
}

func TestRun_MissingConfig(t *testing.T) {
	inDir(t, t.TempDir())

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"pack"}, stdout, stderr, graftProvider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_ProviderError(t *testing.T) {
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"pack"}, stdout, stderr, func(context.Context) (*app.Components, func(), error) {
		return nil, nil, zerr.New("injection failed")
	})
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "injection failed")
}
