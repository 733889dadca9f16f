package year2025

import (
	"aoc-solver/internal/grid"
	"aoc-solver/internal/solver"
)

type day4 struct {
	g *grid.Grid
}

// NewDay4 solves "Printing Department".
func NewDay4(input string) (solver.Solver, error) {
	return &day4{g: grid.Parse(input)}, nil
}

// accessible lists the rolls with fewer than four neighbouring rolls.
func accessible(g *grid.Grid) []grid.Point {
	var out []grid.Point
	for p, b := range g.All() {
		if b != '@' {
			continue
		}
		n := 0
		for _, q := range g.Surround(p) {
			if g.At(q) == '@' {
				n++
			}
		}
		if n < 4 {
			out = append(out, p)
		}
	}
	return out
}

func (d *day4) Part1() (solver.Solution, error) {
	return solver.NewSolution("Number of accessible paper rolls", len(accessible(d.g))), nil
}

// Part2 keeps removing accessible rolls until none are left to take.
func (d *day4) Part2() (solver.Solution, error) {
	g := d.g.Clone()
	removed := 0
	for {
		rolls := accessible(g)
		if len(rolls) == 0 {
			break
		}
		for _, p := range rolls {
			g.Set(p, '.')
		}
		removed += len(rolls)
	}
	return solver.NewSolution("Part 2", removed), nil
}
