package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSolvers = `package main

import (
	"example.com/aoc/internal/solver"
	// <<IMPORT MARKER>>
)

func newRegistry() *solver.Registry {
	r := solver.NewRegistry()
	// <<REGISTER MARKER>>
	return r
}
`

func testScaffoldRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/aoc\n\ngo 1.24.0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, solversFile), []byte(testSolvers), 0o644))
	return root
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return b
}

func TestScaffoldCreateNewYear(t *testing.T) {
	root := testScaffoldRoot(t)
	var warn bytes.Buffer
	s, err := newScaffold(root, &warn, newLoggerTo(io.Discard, true))
	require.NoError(t, err)
	assert.Equal(t, "example.com/aoc", s.module)

	require.NoError(t, s.Create(2019, []int{5, 1}))
	assert.Empty(t, warn.String())

	pkg := filepath.Join(root, "internal", "year2019")
	g := goldie.New(t, goldie.WithFixtureDir(filepath.Join("testdata", "scaffold")))
	g.Assert(t, "day5.go", readFile(t, filepath.Join(pkg, "day5.go")))
	g.Assert(t, "day5_test.go", readFile(t, filepath.Join(pkg, "day5_test.go")))
	g.Assert(t, "register.go", readFile(t, filepath.Join(pkg, "register.go")))
	g.Assert(t, "solvers.go", readFile(t, filepath.Join(root, solversFile)))

	assert.FileExists(t, filepath.Join(pkg, "helpers_test.go"))
	assert.FileExists(t, filepath.Join(pkg, "day1.go"))
	assert.FileExists(t, filepath.Join(pkg, "testdata", "day1-1.example"))
	assert.Empty(t, readFile(t, filepath.Join(pkg, "testdata", "day5-1.example")))
}

func TestScaffoldSkipsExistingFiles(t *testing.T) {
	root := testScaffoldRoot(t)
	var warn bytes.Buffer
	s, err := newScaffold(root, &warn, newLoggerTo(io.Discard, true))
	require.NoError(t, err)
	require.NoError(t, s.Create(2019, []int{5}))

	day5 := filepath.Join(root, "internal", "year2019", "day5.go")
	require.NoError(t, os.WriteFile(day5, []byte("package year2019\n// solved\n"), 0o644))
	solversBefore := readFile(t, filepath.Join(root, solversFile))

	require.NoError(t, s.Create(2019, []int{5, 6}))
	assert.Equal(t, "package year2019\n// solved\n", string(readFile(t, day5)))
	assert.Contains(t, warn.String(), "Warning: file '"+day5+"' already exists, skipping")
	assert.Equal(t, solversBefore, readFile(t, filepath.Join(root, solversFile)), "solvers.go only changes for a new year")

	g := goldie.New(t, goldie.WithFixtureDir(filepath.Join("testdata", "scaffold")))
	g.Assert(t, "register-rerun.go", readFile(t, filepath.Join(root, "internal", "year2019", "register.go")))
}

func TestNewScaffoldNeedsGoMod(t *testing.T) {
	_, err := newScaffold(t.TempDir(), io.Discard, newLoggerTo(io.Discard, true))
	assert.ErrorContains(t, err, "read go.mod")

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("go 1.24.0\n"), 0o644))
	_, err = newScaffold(root, io.Discard, newLoggerTo(io.Discard, true))
	assert.ErrorContains(t, err, "no module line")
}

func TestInsertBeforeMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.go")
	require.NoError(t, os.WriteFile(path, []byte("func f() {\n\ta()\n\t// <<M>>\n}\n"), 0o644))

	require.NoError(t, insertBeforeMarker(path, "// <<M>>", []string{"b()", "a()", "b()"}))
	assert.Equal(t, "func f() {\n\ta()\n\tb()\n\t// <<M>>\n}\n", string(readFile(t, path)))

	require.NoError(t, insertBeforeMarker(path, "// <<M>>", []string{"b()"}))
	assert.Equal(t, "func f() {\n\ta()\n\tb()\n\t// <<M>>\n}\n", string(readFile(t, path)))

	err := insertBeforeMarker(path, "// <<MISSING>>", []string{"c()"})
	assert.ErrorContains(t, err, "not found")
}
