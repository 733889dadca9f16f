package year2024

import (
	"fmt"
	"slices"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day1 struct {
	left, right []int
}

// NewDay1 solves "Historian Hysteria".
func NewDay1(input string) (solver.Solver, error) {
	d := &day1{}
	for _, line := range parse.Lines(input) {
		pair, err := parse.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("expected two location IDs in %q", line)
		}
		d.left = append(d.left, pair[0])
		d.right = append(d.right, pair[1])
	}
	slices.Sort(d.left)
	slices.Sort(d.right)
	return d, nil
}

func (d *day1) Part1() (solver.Solution, error) {
	total := 0
	for i, l := range d.left {
		total += abs(l - d.right[i])
	}
	return solver.NewSolution("Part 1", total), nil
}

func (d *day1) Part2() (solver.Solution, error) {
	counts := map[int]int{}
	for _, r := range d.right {
		counts[r]++
	}
	score := 0
	for _, l := range d.left {
		score += l * counts[l]
	}
	return solver.NewSolution("Part 2", score), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
