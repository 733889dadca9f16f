package year2023

import (
	"slices"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day9 struct {
	histories [][]int
}

// NewDay9 solves "Mirage Maintenance".
func NewDay9(input string) (solver.Solver, error) {
	d := &day9{}
	for _, line := range parse.Lines(input) {
		values, err := parse.Ints(line)
		if err != nil {
			return nil, err
		}
		d.histories = append(d.histories, values)
	}
	return d, nil
}

// extrapolate predicts the value following seq from its difference pyramid.
func extrapolate(seq []int) int {
	next := 0
	for len(seq) > 0 {
		next += seq[len(seq)-1]
		zero := true
		diffs := make([]int, len(seq)-1)
		for i := range diffs {
			diffs[i] = seq[i+1] - seq[i]
			zero = zero && diffs[i] == 0
		}
		if zero {
			break
		}
		seq = diffs
	}
	return next
}

func (d *day9) Part1() (solver.Solution, error) {
	sum := 0
	for _, h := range d.histories {
		sum += extrapolate(h)
	}
	return solver.NewSolution("Sum of extrapolated values", sum), nil
}

func (d *day9) Part2() (solver.Solution, error) {
	sum := 0
	for _, h := range d.histories {
		reversed := slices.Clone(h)
		slices.Reverse(reversed)
		sum += extrapolate(reversed)
	}
	return solver.NewSolution("Part 2", sum), nil
}
