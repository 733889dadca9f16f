package year2024

import (
	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day2 struct {
	reports [][]int
}

// NewDay2 solves "Red-Nosed Reports".
func NewDay2(input string) (solver.Solver, error) {
	d := &day2{}
	for _, line := range parse.Lines(input) {
		levels, err := parse.Ints(line)
		if err != nil {
			return nil, err
		}
		d.reports = append(d.reports, levels)
	}
	return d, nil
}

// safe reports whether levels strictly increase or decrease by 1 to 3 at
// every step. skip removes one level first; -1 keeps them all.
func safe(levels []int, skip int) bool {
	prev, sign := -1, 0
	for i, v := range levels {
		if i == skip {
			continue
		}
		if prev < 0 {
			prev = i
			continue
		}
		diff := v - levels[prev]
		prev = i
		if diff == 0 || abs(diff) > 3 {
			return false
		}
		s := 1
		if diff < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

func (d *day2) Part1() (solver.Solution, error) {
	count := 0
	for _, r := range d.reports {
		if safe(r, -1) {
			count++
		}
	}
	return solver.NewSolution("Part 1", count), nil
}

// Part2 applies the Problem Dampener: one bad level may be removed.
func (d *day2) Part2() (solver.Solution, error) {
	count := 0
	for _, r := range d.reports {
		for skip := -1; skip < len(r); skip++ {
			if safe(r, skip) {
				count++
				break
			}
		}
	}
	return solver.NewSolution("Part 2", count), nil
}
