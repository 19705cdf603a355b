package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const titleScreen = `<Project><Panel><Label Id="TitleLabel" /></Panel></Project>`

func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	ui := filepath.Join(dir, "Content", "UI")
	require.NoError(t, os.MkdirAll(ui, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ui, "TitleScreen.xml"), []byte(titleScreen), 0o644))
	return dir
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %v", err)
	return exitErr.Code
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o, exit, err := parse(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.False(t, exit)
		assert.Equal(t, ".", o.Dir)
		assert.Equal(t, "csharp", o.Target)
		assert.Equal(t, "info", o.LogLevel)
		assert.Equal(t, "text", o.LogFormat)
	})

	t.Run("repeatable feature", func(t *testing.T) {
		o, _, err := parse([]string{"-feature", "dedupe", "-feature", "segment-match,", "proj"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, []string{"dedupe", "segment-match"}, o.Features)
		assert.Equal(t, "proj", o.Dir)
	})

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		o, exit, err := parse([]string{"-h"}, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, o)
		assert.Contains(t, out.String(), "myragen [options] [DIR]")
	})

	for _, args := range [][]string{
		{"-log-format", "xml"},
		{"-log-level", "trace"},
		{"-workers", "-1"},
		{"a", "b"},
		{"-unknown"},
	} {
		t.Run(args[0], func(t *testing.T) {
			_, _, err := parse(args, &bytes.Buffer{})
			assert.Equal(t, 2, exitCode(t, err))
		})
	}
}

func TestRun(t *testing.T) {
	dir := project(t)
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-namespace", "MyGame.UI", dir}, &bytes.Buffer{}, &stderr)
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "Generated", "TitleScreenUI.g.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "namespace MyGame.UI;")
	assert.Contains(t, stderr.String(), "code=MYRA004")
	assert.Contains(t, stderr.String(), "Generated TitleScreenUI with 1 widgets")
}

func TestRunOptionsFile(t *testing.T) {
	dir := project(t)
	out := t.TempDir()
	opts := filepath.Join(t.TempDir(), "myragen.yaml")
	require.NoError(t, os.WriteFile(opts, []byte(`
global:
  build_property.MyraUIGenerator_namespace: FromFile
`), 0o644))

	err := run(context.Background(), []string{"-options", opts, "-out", out, "-log-format", "json", dir}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(out, "TitleScreenUI.g.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "namespace FromFile;")

	err = run(context.Background(), []string{"-options", filepath.Join(out, "missing.yaml"), dir}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(t, err))
}

func TestRunDryRun(t *testing.T) {
	dir := project(t)
	err := run(context.Background(), []string{"-dry-run", dir}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Generated"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunGoTarget(t *testing.T) {
	dir := project(t)
	out := t.TempDir()
	err := run(context.Background(), []string{"-target", "go", "-out", out, "-dry-run", dir}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
}

func TestRunInvalidConfig(t *testing.T) {
	dir := project(t)
	err := run(context.Background(), []string{"-target", "java", dir}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(t, err))

	err = run(context.Background(), []string{"-feature", "nope", dir}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(t, err))
}

func TestRunStrict(t *testing.T) {
	dir := project(t)
	// A broken layout is a warning, not an error, so strict mode passes.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Content", "UI", "Broken.xml"), []byte("<Project>"), 0o644))
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-strict", "-dry-run", dir}, &bytes.Buffer{}, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "code=MYRA001")
	assert.Contains(t, stderr.String(), "level=WARN")
}

func TestRunWatchStops(t *testing.T) {
	dir := project(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, []string{"-watch", "-dry-run", dir}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.NoError(t, err)
}

func TestWatchFilter(t *testing.T) {
	opts := filepath.Join(t.TempDir(), "myragen.yaml")
	f := watchFilter(&options{Options: opts})
	assert.True(t, f("Content/UI/Title.xml"))
	assert.True(t, f("Content/UI/Title.XML"))
	assert.True(t, f(opts))
	assert.False(t, f("Generated/TitleUI.g.cs"))
}
