package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"aoc-solver/internal/solver"
)

// mapInputs serves inputs from memory and records what was asked for.
type mapInputs struct {
	mu     sync.Mutex
	inputs map[solver.Key]string
	asked  []solver.Key
}

func (m *mapInputs) Get(ctx context.Context, key solver.Key) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.asked = append(m.asked, key)
	in, ok := m.inputs[key]
	if !ok {
		return "", fmt.Errorf("no input for %s", key)
	}
	return in, nil
}

// funcSolver answers each part with a function.
type funcSolver struct {
	part1, part2 func() (solver.Solution, error)
}

func (s funcSolver) Part1() (solver.Solution, error) { return s.part1() }
func (s funcSolver) Part2() (solver.Solution, error) { return s.part2() }

func answer(desc string, v any) func() (solver.Solution, error) {
	return func() (solver.Solution, error) { return solver.NewSolution(desc, v), nil }
}

func failWith(err error) func() (solver.Solution, error) {
	return func() (solver.Solution, error) { return solver.Solution{}, err }
}

// lengthSolver reports the input length, sleeping longer for earlier days so
// they finish last.
func lengthSolver(delay time.Duration) solver.Factory {
	return func(input string) (solver.Solver, error) {
		time.Sleep(delay)
		return funcSolver{
			part1: answer("Length", len(input)),
			part2: answer("Upper", strings.ToUpper(input)),
		}, nil
	}
}

func newTestRunner(reg *solver.Registry, inputs inputSource, workers int) (*runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &runner{
		registry: reg,
		inputs:   inputs,
		workers:  workers,
		out:      &out,
		progress: newSpinner(io.Discard),
		log:      newLoggerTo(io.Discard, true),
	}, &out
}

func TestRunnerPrintsInRequestOrder(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	reg := solver.NewRegistry()
	reg.Register(2024, 1, lengthSolver(30*time.Millisecond))
	reg.Register(2024, 2, lengthSolver(15*time.Millisecond))
	reg.Register(2024, 3, lengthSolver(0))
	inputs := &mapInputs{inputs: map[solver.Key]string{
		{Year: 2024, Day: 1}: "a",
		{Year: 2024, Day: 2}: "bb",
		{Year: 2024, Day: 3}: "ccc",
	}}

	r, out := newTestRunner(reg, inputs, 3)
	report, err := r.Run(context.Background(), 2024, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Zero(t, report.Failed)
	require.Len(t, report.Results, 3)

	text := out.String()
	i1 := strings.Index(text, "📆 2024, day 1\n")
	i2 := strings.Index(text, "📆 2024, day 2\n")
	i3 := strings.Index(text, "📆 2024, day 3\n")
	require.True(t, i1 >= 0 && i2 >= 0 && i3 >= 0, text)
	assert.Less(t, i1, i2)
	assert.Less(t, i2, i3)
	assert.Contains(t, text, "⭐ Length: 2 (")
	assert.Contains(t, text, "⭐ Upper: CCC (")

	got := make([]string, len(report.Results))
	for i, res := range report.Results {
		got[i] = res.parts[1].solution.Value
	}
	if diff := cmp.Diff([]string{"A", "BB", "CCC"}, got); diff != "" {
		t.Errorf("part 2 answers (-want +got):\n%s", diff)
	}
}

func TestRunnerReportsFailuresAndContinues(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	boom := errors.New("boom")
	reg := solver.NewRegistry()
	reg.Register(2023, 1, func(string) (solver.Solver, error) {
		return funcSolver{part1: answer("Sum", 142), part2: failWith(solver.ErrNotImplemented)}, nil
	})
	reg.Register(2023, 2, func(string) (solver.Solver, error) {
		return funcSolver{part1: answer("Sum", 8), part2: failWith(boom)}, nil
	})
	reg.Register(2023, 3, func(string) (solver.Solver, error) {
		return nil, errors.New("bad grid")
	})
	reg.Register(2023, 4, func(string) (solver.Solver, error) {
		return funcSolver{
			part1: func() (solver.Solution, error) { panic("index out of range") },
			part2: answer("Cards", 30),
		}, nil
	})
	inputs := &mapInputs{inputs: map[solver.Key]string{
		{Year: 2023, Day: 1}: "x",
		{Year: 2023, Day: 2}: "x",
		{Year: 2023, Day: 3}: "x",
		{Year: 2023, Day: 4}: "x",
	}}

	r, out := newTestRunner(reg, inputs, 2)
	report, err := r.Run(context.Background(), 2023, []int{1, 2, 3, 4, 5})
	require.EqualError(t, err, "4 of 5 days failed")
	assert.Equal(t, 4, report.Failed)

	text := out.String()
	assert.Contains(t, text, "⭐ Sum: 142")
	assert.Contains(t, text, "⭐ (Solver for part not implemented.)")
	assert.Contains(t, text, "✗ part 2: boom")
	assert.Contains(t, text, "✗ construct solver 2023-03: bad grid")
	assert.Contains(t, text, "✗ part 1: panic: index out of range")
	assert.Contains(t, text, "⭐ Cards: 30")
	assert.Contains(t, text, "✗ no solver for day 5 of year 2023")

	assert.False(t, report.Results[0].failed())
	assert.True(t, report.Results[1].failed())
	assert.ErrorIs(t, report.Results[4].err, solver.ErrNoSolver)
}

func TestRunnerSkipsInputForUnknownDay(t *testing.T) {
	reg := solver.NewRegistry()
	inputs := &mapInputs{}
	r, _ := newTestRunner(reg, inputs, 1)
	_, err := r.Run(context.Background(), 2024, []int{9})
	require.Error(t, err)
	assert.Empty(t, inputs.asked)
}

func TestRunnerInputError(t *testing.T) {
	reg := solver.NewRegistry()
	reg.Register(2024, 1, lengthSolver(0))
	r, out := newTestRunner(reg, &mapInputs{}, 1)

	report, err := r.Run(context.Background(), 2024, []int{1})
	require.Error(t, err)
	assert.ErrorContains(t, report.Results[0].err, "load input: no input for 2024-01")
	assert.Contains(t, out.String(), "✗ load input: no input for 2024-01")
}

func TestRunnerCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	reg := solver.NewRegistry()
	reg.Register(2024, 1, lengthSolver(0))
	reg.Register(2024, 2, lengthSolver(0))
	inputs := &mapInputs{inputs: map[solver.Key]string{
		{Year: 2024, Day: 1}: "a",
		{Year: 2024, Day: 2}: "b",
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, _ := newTestRunner(reg, inputs, 2)
	report, err := r.Run(ctx, 2024, []int{1, 2})
	require.EqualError(t, err, "2 of 2 days failed")
	for _, res := range report.Results {
		assert.ErrorIs(t, res.err, context.Canceled)
	}
	assert.Empty(t, inputs.asked)
}

func TestRunPartRecoversPanic(t *testing.T) {
	res := runPart(func() (solver.Solution, error) {
		var m map[string]int
		m["x"]++
		return solver.Solution{}, nil
	})
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "panic: assignment to entry in nil map")
}
