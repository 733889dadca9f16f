package year2024

import (
	"fmt"

	"aoc-solver/internal/parse"
	"aoc-solver/internal/solver"
)

const prizeOffset = 10_000_000_000_000

type clawMachine struct {
	ax, ay, bx, by, px, py int
}

type day13 struct {
	machines []clawMachine
}

// NewDay13 solves "Claw Contraption".
func NewDay13(input string) (solver.Solver, error) {
	d := &day13{}
	for _, block := range parse.Blocks(input) {
		n := parse.AllInts(block)
		if len(n) != 6 {
			return nil, fmt.Errorf("expected 6 numbers per machine, got %d in %q", len(n), block)
		}
		d.machines = append(d.machines, clawMachine{n[0], n[1], n[2], n[3], n[4], n[5]})
	}
	return d, nil
}

// presses solves the two linear equations with Cramer's rule. ok is false
// when there is no whole, non-negative solution.
func (m clawMachine) presses(offset int) (a, b int, ok bool) {
	px, py := m.px+offset, m.py+offset
	det := m.ax*m.by - m.ay*m.bx
	if det == 0 {
		return 0, 0, false
	}
	na := px*m.by - py*m.bx
	nb := m.ax*py - m.ay*px
	if na%det != 0 || nb%det != 0 {
		return 0, 0, false
	}
	a, b = na/det, nb/det
	return a, b, a >= 0 && b >= 0
}

// tokens is the cheapest total cost to win every winnable prize. limit caps
// the presses per button; zero means no cap.
func (d *day13) tokens(offset, limit int) int {
	total := 0
	for _, m := range d.machines {
		a, b, ok := m.presses(offset)
		if !ok || limit > 0 && (a > limit || b > limit) {
			continue
		}
		total += 3*a + b
	}
	return total
}

func (d *day13) Part1() (solver.Solution, error) {
	return solver.NewSolution("Part 1", d.tokens(0, 100)), nil
}

func (d *day13) Part2() (solver.Solution, error) {
	return solver.NewSolution("Part 2", d.tokens(prizeOffset, 0)), nil
}
