package year2025

import (
	"fmt"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day3 struct {
	banks []string
}

// NewDay3 solves "Lobby".
func NewDay3(input string) (solver.Solver, error) {
	d := &day3{}
	for _, line := range parse.Lines(input) {
		for i := range len(line) {
			if line[i] < '1' || line[i] > '9' {
				return nil, fmt.Errorf("invalid joltage %q in bank %q", line[i], line)
			}
		}
		d.banks = append(d.banks, line)
	}
	return d, nil
}

// joltage picks n batteries in order so the digits they form are largest.
func joltage(bank string, n int) int {
	value, from := 0, 0
	for left := n; left > 0; left-- {
		best := from
		for i := from; i <= len(bank)-left; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		value = value*10 + int(bank[best]-'0')
		from = best + 1
	}
	return value
}

func (d *day3) total(n int) (int, error) {
	sum := 0
	for _, bank := range d.banks {
		if len(bank) < n {
			return 0, fmt.Errorf("bank %q has fewer than %d batteries", bank, n)
		}
		sum += joltage(bank, n)
	}
	return sum, nil
}

func (d *day3) Part1() (solver.Solution, error) {
	sum, err := d.total(2)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Output voltage", sum), nil
}

func (d *day3) Part2() (solver.Solution, error) {
	sum, err := d.total(12)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Part 2", sum), nil
}
