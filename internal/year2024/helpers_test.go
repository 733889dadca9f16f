package year2024

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"aoc-solver/internal/solver"
)

// example reads testdata/<name>.example.
func example(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name+".example"))
	require.NoError(t, err)
	return string(data)
}

func build(t *testing.T, factory solver.Factory, name string) solver.Solver {
	t.Helper()
	s, err := factory(example(t, name))
	require.NoError(t, err)
	return s
}

func part1(t *testing.T, factory solver.Factory, name string) string {
	t.Helper()
	sol, err := build(t, factory, name).Part1()
	require.NoError(t, err)
	return sol.Value
}

func part2(t *testing.T, factory solver.Factory, name string) string {
	t.Helper()
	sol, err := build(t, factory, name).Part2()
	require.NoError(t, err)
	return sol.Value
}
