package year2025

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

// problem is a block of worksheet columns between two blank columns.
type problem struct {
	from, to int // column span, to exclusive
	op       byte
}

type day6 struct {
	sheet    *grid.Grid
	problems []problem
}

// NewDay6 solves "Trash Compactor".
func NewDay6(input string) (solver.Solver, error) {
	g := grid.Parse(input)
	if g.Height() < 2 {
		return nil, errors.New("worksheet needs operands and an operator row")
	}
	d := &day6{sheet: g}
	ops := g.Row(g.Height() - 1)
	start := -1
	for c := 0; c <= g.Width(); c++ {
		blank := c == g.Width() || strings.TrimSpace(string(g.Col(c))) == ""
		switch {
		case !blank && start < 0:
			start = c
		case blank && start >= 0:
			op := strings.TrimSpace(string(ops[start:c]))
			if op != "+" && op != "*" {
				return nil, fmt.Errorf("invalid operator %q in columns %d-%d", op, start, c-1)
			}
			d.problems = append(d.problems, problem{from: start, to: c, op: op[0]})
			start = -1
		}
	}
	return d, nil
}

func apply(op byte, operands []int) int {
	result := operands[0]
	for _, n := range operands[1:] {
		if op == '+' {
			result += n
		} else {
			result *= n
		}
	}
	return result
}

// rowOperands reads one number per row, left to right.
func (d *day6) rowOperands(p problem) ([]int, error) {
	var out []int
	for r := range d.sheet.Height() - 1 {
		text := strings.TrimSpace(string(d.sheet.Row(r)[p.from:p.to]))
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("operand %q: %w", text, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// columnOperands reads one number per column, right to left, each written
// top to bottom.
func (d *day6) columnOperands(p problem) ([]int, error) {
	var out []int
	for c := p.to - 1; c >= p.from; c-- {
		col := d.sheet.Col(c)
		text := strings.TrimSpace(string(col[:len(col)-1]))
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("operand %q: %w", text, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (d *day6) grandTotal(operands func(problem) ([]int, error)) (int, error) {
	total := 0
	for _, p := range d.problems {
		nums, err := operands(p)
		if err != nil {
			return 0, err
		}
		if len(nums) == 0 {
			return 0, fmt.Errorf("problem in columns %d-%d has no operands", p.from, p.to-1)
		}
		total += apply(p.op, nums)
	}
	return total, nil
}

func (d *day6) Part1() (solver.Solution, error) {
	total, err := d.grandTotal(d.rowOperands)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Grand total", total), nil
}

func (d *day6) Part2() (solver.Solution, error) {
	total, err := d.grandTotal(d.columnOperands)
	if err != nil {
		return solver.Solution{}, err
	}
	return solver.NewSolution("Grand total, part 2", total), nil
}
