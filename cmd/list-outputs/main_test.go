// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/list-outputs/pkg/types"
)

// execute runs the root command with args and returns what it wrote to
// stdout. Flags are reset afterwards so tests do not leak into each other.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// outputsDir creates a directory holding the named empty files.
func outputsDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	return dir
}

func TestRoot_ListsDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := outputsDir(t, "cat.png", "notes")

	out, err := execute(t, "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "![cat]("+dir+"/cat.png)\n![notes]("+dir+"/notes)\n", out)
}

func TestRoot_MissingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "--dir", "./outputs")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRoot_RejectsArguments(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "--dir", outputsDir(t), "extra")
	assert.Error(t, err)
}

func TestRoot_DirFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := outputsDir(t, "dog.jpeg")
	t.Setenv("LIST_OUTPUTS_SOURCE_DIR", dir)

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "![dog]("+dir+"/dog.jpeg)\n", out)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, "--dir", outputsDir(t), "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestConfig_PrintsYAML(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "config", "--dir", "renders")
	require.NoError(t, err)

	var cfg types.ListerConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "renders", cfg.SourceDir)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "list-outputs dev\n", out)
}
