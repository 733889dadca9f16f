package year2023

import (
	"fmt"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day4 struct {
	matches []int // winning numbers held, per card
}

// NewDay4 solves "Scratchcards".
func NewDay4(input string) (solver.Solver, error) {
	d := &day4{}
	for _, line := range parse.Lines(input) {
		_, numbers, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed card %q", line)
		}
		winning, held, ok := strings.Cut(numbers, "|")
		if !ok {
			return nil, fmt.Errorf("malformed card %q", line)
		}
		win, err := parse.Ints(winning)
		if err != nil {
			return nil, err
		}
		have, err := parse.Ints(held)
		if err != nil {
			return nil, err
		}
		set := make(map[int]bool, len(win))
		for _, n := range win {
			set[n] = true
		}
		count := 0
		for _, n := range have {
			if set[n] {
				count++
			}
		}
		d.matches = append(d.matches, count)
	}
	return d, nil
}

func (d *day4) Part1() (solver.Solution, error) {
	points := 0
	for _, m := range d.matches {
		if m > 0 {
			points += 1 << (m - 1)
		}
	}
	return solver.NewSolution("Points", points), nil
}

func (d *day4) Part2() (solver.Solution, error) {
	copies := make([]int, len(d.matches))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, m := range d.matches {
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return solver.NewSolution("Number of scratch cards", total), nil
}
