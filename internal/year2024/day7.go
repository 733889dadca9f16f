package year2024

import (
	"fmt"
	"strconv"
	"strings"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

type equation struct {
	target  int
	numbers []int
}

type day7 struct {
	equations []equation
}

// NewDay7 solves "Bridge Repair".
func NewDay7(input string) (solver.Solver, error) {
	d := &day7{}
	for _, line := range parse.Lines(input) {
		head, tail, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("malformed equation %q", line)
		}
		target, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("test value in %q: %w", line, err)
		}
		numbers, err := parse.Ints(tail)
		if err != nil {
			return nil, err
		}
		if len(numbers) == 0 {
			return nil, fmt.Errorf("no operands in %q", line)
		}
		d.equations = append(d.equations, equation{target: target, numbers: numbers})
	}
	return d, nil
}

// solvable works backwards from the target: the last operand must have been
// added, multiplied, or (with concat) appended to the result of the rest.
func solvable(target int, numbers []int, concat bool) bool {
	last := len(numbers) - 1
	n := numbers[last]
	if last == 0 {
		return target == n
	}
	rest := numbers[:last]
	if target >= n && solvable(target-n, rest, concat) {
		return true
	}
	if n != 0 && target%n == 0 && solvable(target/n, rest, concat) {
		return true
	}
	if concat {
		pow := 10
		for pow <= n {
			pow *= 10
		}
		if target > n && target%pow == n && solvable(target/pow, rest, concat) {
			return true
		}
	}
	return false
}

func (d *day7) calibrate(concat bool) int {
	sum := 0
	for _, e := range d.equations {
		if solvable(e.target, e.numbers, concat) {
			sum += e.target
		}
	}
	return sum
}

func (d *day7) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.calibrate(false)), nil
}

func (d *day7) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.calibrate(true)), nil
}
