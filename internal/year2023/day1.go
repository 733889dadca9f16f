package year2023

import (
	"fmt"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type day1 struct {
	lines []string
}

// NewDay1 solves "Trebuchet?!".
func NewDay1(input string) (solver.Solver, error) {
	return &day1{lines: parse.Lines(input)}, nil
}

var spelledDigits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any. Spelled-out digits only
// count when words is set.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, w := range spelledDigits {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

func calibration(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range len(line) {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no digit in line %q", line)
	}
	return first*10 + last, nil
}

func (d *day1) sum(words bool) (int, error) {
	total := 0
	for _, line := range d.lines {
		v, err := calibration(line, words)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func (d *day1) Part1() (solver.Solution, error) {
	total, err := d.sum(false)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Calibration sum (part 1)", total), nil
}

func (d *day1) Part2() (solver.Solution, error) {
	total, err := d.sum(true)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Calibration sum (part 2)", total), nil
}
