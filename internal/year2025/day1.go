package year2025

import (
	"fmt"
	"strconv"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

const (
	dialSize  = 100
	dialStart = 50
)

type day1 struct {
	rotations []int // negative turns left
}

// NewDay1 solves "Secret Entrance".
func NewDay1(input string) (solver.Solver, error) {
	d := &day1{}
	for _, line := range parse.Lines(input) {
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, fmt.Errorf("rotation %q: %w", line, err)
		}
		switch line[0] {
		case 'L':
			n = -n
		case 'R':
		default:
			return nil, fmt.Errorf("invalid direction: %c", line[0])
		}
		d.rotations = append(d.rotations, n)
	}
	return d, nil
}

func mod(a, m int) int {
	return ((a % m) + m) % m
}

// zeroClicks counts how many clicks of a rotation by n from dial land on 0.
func zeroClicks(dial, n int) int {
	if n >= 0 {
		return (dial + n) / dialSize
	}
	n = -n
	if dial == 0 {
		return n / dialSize
	}
	if n < dial {
		return 0
	}
	return (n-dial)/dialSize + 1
}

func (d *day1) Part1() (solver.Solution, error) {
	dial, password := dialStart, 0
	for _, n := range d.rotations {
		dial = mod(dial+n, dialSize)
		if dial == 0 {
			password++
		}
	}
	return solver.NewSolution("Password", password), nil
}

func (d *day1) Part2() (solver.Solution, error) {
	dial, password := dialStart, 0
	for _, n := range d.rotations {
		password += zeroClicks(dial, n)
		dial = mod(dial+n, dialSize)
	}
	return solver.NewSolution("Password with method 0x434C49434B", password), nil
}
