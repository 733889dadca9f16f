package year2023

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day6 struct {
	times, distances   []int
	timeLine, distLine string
}

// NewDay6 solves "Wait For It".
func NewDay6(input string) (solver.Solver, error) {
	lines := parse.Lines(input)
	if len(lines) < 2 {
		return nil, fmt.Errorf("expected time and distance lines, got %d lines", len(lines))
	}
	d := &day6{}
	var err error
	_, d.timeLine, _ = strings.Cut(lines[0], ":")
	_, d.distLine, _ = strings.Cut(lines[1], ":")
	if d.times, err = parse.Ints(d.timeLine); err != nil {
		return nil, err
	}
	if d.distances, err = parse.Ints(d.distLine); err != nil {
		return nil, err
	}
	if len(d.times) != len(d.distances) {
		return nil, fmt.Errorf("%d times but %d distances", len(d.times), len(d.distances))
	}
	return d, nil
}

// waysToWin counts the hold times h in [0, t] with h*(t-h) > record. The
// distance is symmetric around t/2, so only the lowest winning hold is needed.
func waysToWin(t, record int) int {
	disc := float64(t*t - 4*record)
	if disc < 0 {
		return 0
	}
	lo := max(int(math.Floor((float64(t)-math.Sqrt(disc))/2)), 0)
	for lo > 0 && (lo-1)*(t-lo+1) > record {
		lo--
	}
	for lo <= t-lo && lo*(t-lo) <= record {
		lo++
	}
	if lo > t-lo {
		return 0
	}
	return t - 2*lo + 1
}

func (d *day6) Part1() (solver.Solution, error) {
	product := 1
	for i, t := range d.times {
		product *= waysToWin(t, d.distances[i])
	}
	return solver.NewSolution("Product of ways to win (part 1)", product), nil
}

func (d *day6) Part2() (solver.Solution, error) {
	t, err := strconv.Atoi(strings.Join(strings.Fields(d.timeLine), ""))
	if err != nil {
		return solver.Solution{}, fmt.Errorf("race time: %w", err)
	}
	record, err := strconv.Atoi(strings.Join(strings.Fields(d.distLine), ""))
	if err != nil {
		return solver.Solution{}, fmt.Errorf("race distance: %w", err)
	}
	return solver.NewSolution("Part 2", waysToWin(t, record)), nil
}
