package year2024

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day4 struct {
	g *grid.Grid
}

// NewDay4 solves "Ceres Search".
func NewDay4(input string) (solver.Solver, error) {
	return &day4{g: grid.Parse(input)}, nil
}

// spells reports whether word can be read from p stepping by dir.
func spells(g *grid.Grid, p, dir grid.Point, word string) bool {
	for i := range len(word) {
		if !g.InBounds(p) || g.At(p) != word[i] {
			return false
		}
		p = p.Add(dir)
	}
	return true
}

func (d *day4) Part1() (solver.Solution, error) {
	count := 0
	for p, b := range d.g.All() {
		if b != 'X' {
			continue
		}
		for _, q := range d.g.Surround(p) {
			if spells(d.g, p, q.Sub(p), "XMAS") {
				count++
			}
		}
	}
	return solver.NewSolution("Part 1", count), nil
}

// Part2 counts two MAS words crossing diagonally on an A.
func (d *day4) Part2() (solver.Solution, error) {
	diagonal := func(a, b grid.Point) bool {
		if !d.g.InBounds(a) || !d.g.InBounds(b) {
			return false
		}
		x, y := d.g.At(a), d.g.At(b)
		return x == 'M' && y == 'S' || x == 'S' && y == 'M'
	}
	count := 0
	for p, b := range d.g.All() {
		if b != 'A' {
			continue
		}
		upLeft := p.Add(grid.Up).Add(grid.Left)
		upRight := p.Add(grid.Up).Add(grid.Right)
		downLeft := p.Add(grid.Down).Add(grid.Left)
		downRight := p.Add(grid.Down).Add(grid.Right)
		if diagonal(upLeft, downRight) && diagonal(upRight, downLeft) {
			count++
		}
	}
	return solver.NewSolution("Part 2", count), nil
}
