package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(newLoggerTo(io.Discard, true))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// writeTestConfig points the cache at a fresh directory seeded with inputs.
func writeTestConfig(t *testing.T, inputs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	for name, body := range inputs {
		require.NoError(t, os.WriteFile(filepath.Join(cacheDir, name), []byte(body), 0o644))
	}
	b, err := json.Marshal(map[string]any{"cache_dir": cacheDir, "workers": 2})
	require.NoError(t, err)
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "list", "-y", "2024")
	require.NoError(t, err)
	assert.Equal(t, "2024: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 23 24 25\n", out)

	out, _, err = execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2023: 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20 21 22 23 24 25\n")
	assert.Contains(t, out, "2025: 1 2 3 4 5 6 7 8 9 10 11 12\n")

	_, _, err = execute(t, "list", "-y", "2016")
	assert.EqualError(t, err, "no solvers for year 2016")
}

func TestSolveFromCache(t *testing.T) {
	t.Setenv(sessionEnv, "")
	cfg := writeTestConfig(t, map[string]string{
		"2024-01": "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n",
	})

	for _, args := range [][]string{
		{"solve", "--config", cfg, "-y", "2024", "-d", "1"},
		{"--config", cfg, "--year", "2024", "--day", "1"},
		{"solve", "--config", cfg, "--year", "2024", "--days", "1"},
	} {
		out, _, err := execute(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "📆 2024, day 1\n")
		assert.Contains(t, out, "⭐ Part 1: 11 (")
		assert.Contains(t, out, "⭐ Part 2: 31 (")
	}
}

func TestDaysFlagAcceptsBothSpellings(t *testing.T) {
	cmd := newRootCommand(newLoggerTo(io.Discard, true))
	for _, c := range append([]*cobra.Command{cmd}, cmd.Commands()...) {
		if c.Name() != "solve" && c.Name() != "create" && c != cmd {
			continue
		}
		f := c.Flags().Lookup("days")
		require.NotNil(t, f, c.Name())
		assert.Equal(t, "d", f.Shorthand)
		assert.Same(t, f, c.Flags().Lookup("day"), c.Name())
	}
}

func TestSolveReportsMissingSolver(t *testing.T) {
	cfg := writeTestConfig(t, map[string]string{"2025-01": "R10\n"})
	out, _, err := execute(t, "solve", "--config", cfg, "-y", "2025", "-d", "13,1")
	require.EqualError(t, err, "1 of 2 days failed")
	assert.Contains(t, out, "✗ no solver for day 13 of year 2025")
	assert.Contains(t, out, "⭐ Part 1: 0 (")
}

func TestSolveRejectsBadRequest(t *testing.T) {
	cfg := writeTestConfig(t, nil)
	_, _, err := execute(t, "solve", "--config", cfg, "-y", "2024", "-d", "26")
	assert.EqualError(t, err, "day 26 out of range 1..25")

	_, _, err = execute(t, "solve", "--config", cfg, "-y", "2014", "-d", "1")
	assert.ErrorContains(t, err, "year 2014 out of range")
}

func TestSolveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"workers": 0}`), 0o600))
	_, _, err := execute(t, "solve", "--config", path, "-y", "2024", "-d", "1")
	assert.ErrorContains(t, err, "workers")
}

func TestCreateCommand(t *testing.T) {
	root := testScaffoldRoot(t)
	_, stderr, err := execute(t, "create", "--root", root, "-y", "2019", "-d", "3,4")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	for _, name := range []string{"register.go", "helpers_test.go", "day3.go", "day4_test.go"} {
		assert.FileExists(t, filepath.Join(root, "internal", "year2019", name))
	}

	_, stderr, err = execute(t, "create", "--root", root, "-y", "2019", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "already exists, skipping")
}

func TestSetSessionForget(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, keyring.Set(keyringService, keyringUser, "old"))
	cfg := writeTestConfig(t, nil)

	_, _, err := execute(t, "set-session-id", "--config", cfg, "--forget")
	require.NoError(t, err)
	_, err = keyring.Get(keyringService, keyringUser)
	assert.ErrorIs(t, err, keyring.ErrNotFound)
}

func TestUnknownSubcommand(t *testing.T) {
	_, _, err := execute(t, "frobnicate")
	assert.Error(t, err)
}
